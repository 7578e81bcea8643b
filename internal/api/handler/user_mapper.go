package handler

import "github.com/adopet/account-service/internal/core/domain"

// --- Domain → HTTP projections ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Github: u.Github,
		Phone:  u.Phone,
		City:   u.City,
		About:  u.About,
	}
}

func toRegisteredUserResponse(u *domain.User) registeredUserResponse {
	return registeredUserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
