package services

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"go.uber.org/zap"
)

type profileService struct {
	profileRepo storage.ProfileRepository
	log         *zap.Logger
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(profileRepo storage.ProfileRepository, log *zap.Logger) ProfileService {
	return &profileService{profileRepo: profileRepo, log: log.Named("profile_service")}
}

// GetProfile always targets the caller's own profile.
func (s *profileService) GetProfile(ctx context.Context, actor models.Actor) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, mapRepoError(err, "getting profile")
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, actor models.Actor, req *dto.UpdateProfileRequest) (*models.Profile, bool, error) {
	profile, err := buildProfile(actor, req)
	if err != nil {
		return nil, false, err
	}

	saved, created, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		s.log.Error("UpdateProfile: repository error", zap.Int64("user_id", actor.ID), zap.Error(err))
		return nil, false, mapRepoError(err, "saving profile")
	}
	s.log.Info("UpdateProfile: profile saved", zap.Int64("user_id", actor.ID), zap.Bool("created", created))
	return saved, created, nil
}

// buildProfile maps the request onto the union member of the caller's role.
// Fields of the other specialization are rejected.
func buildProfile(actor models.Actor, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile := models.NewProfile(models.ProfileBase{
		UserID:    actor.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}, actor.Role)

	switch actor.Role {
	case models.RoleEmployer:
		if req.ResumeURL != nil {
			return nil, invalidField("resumeUrl", "resumeUrl is only valid for job seeker profiles")
		}
		profile.Employer.CompanyName = req.CompanyName
		profile.Employer.CompanyDescription = req.CompanyDescription
	case models.RoleJobSeeker:
		if req.CompanyName != nil {
			return nil, invalidField("companyName", "companyName is only valid for employer profiles")
		}
		if req.CompanyDescription != nil {
			return nil, invalidField("companyDescription", "companyDescription is only valid for employer profiles")
		}
		profile.JobSeeker.ResumeURL = req.ResumeURL
	default:
		return nil, ErrForbidden
	}
	return profile, nil
}
