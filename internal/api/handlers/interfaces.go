package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	CurrentUser(c *gin.Context)
	Logout(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	ListEmployerJobs(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListJobApplications(c *gin.Context)
	ListMyApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

type ProfileHandlerInterface interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ AuthHandlerInterface        = (*AuthHandler)(nil)
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
	_ ProfileHandlerInterface     = (*ProfileHandler)(nil)
)
