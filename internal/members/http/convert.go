package http

import (
	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/pkg/flocksdk"
)

// Converters from domain types to wire shapes. Hashes never cross this
// boundary: UserDetail and UserSummary carry none to begin with.

func toChurchInfo(c domain.Church) flocksdk.ChurchInfo {
	return flocksdk.ChurchInfo{
		ChurchID:  c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toPersonInfo(p domain.Person) flocksdk.PersonInfo {
	return flocksdk.PersonInfo{
		PersonID:    p.ID,
		Firstname:   p.Firstname,
		Lastname:    p.Lastname,
		Email:       p.Email,
		Phone:       p.Phone,
		Gender:      p.Gender,
		CivilStatus: p.CivilStatus,
		Birthday:    p.Birthday,
		Address:     p.Address,
		PlaceOfWork: p.PlaceOfWork,
		AgeGroup:    p.AgeGroup,
		Country:     p.Country,
		District:    p.District,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toRoleInfo(r domain.Role) flocksdk.RoleInfo {
	return flocksdk.RoleInfo{
		RoleID:      r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toUserResponse(u domain.UserDetail) flocksdk.UserResponse {
	return flocksdk.UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Person:    toPersonInfo(u.Person),
		Role:      toRoleInfo(u.Role),
		Church:    toChurchInfo(u.Church),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserSummary(u domain.UserSummary) flocksdk.UserSummary {
	return flocksdk.UserSummary{
		UserID:    u.ID,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Role:      u.RoleName,
	}
}
