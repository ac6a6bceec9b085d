package handler

import (
	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProductInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:     req.Name,
		Caffeine: req.Caffeine,
		Alcohol:  req.Alcohol,
		Energy:   req.Energy,
		Sugar:    req.Sugar,
		Price:    req.Price,
		Active:   req.Active,
		Image:    req.Image,
	}
}

func toProductPatch(req editProductRequest) domain.ProductPatch {
	return domain.ProductPatch{
		Name:     req.Name,
		Caffeine: req.Caffeine,
		Alcohol:  req.Alcohol,
		Energy:   req.Energy,
		Sugar:    req.Sugar,
		Price:    req.Price,
		Active:   req.Active,
		Image:    req.Image,
	}
}

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Balance:  req.Balance,
		Active:   req.Active,
		Audit:    req.Audit,
		Redirect: req.Redirect,
		Avatar:   req.Avatar,
	}
}

func toUserPatch(req editUserRequest) domain.UserPatch {
	return domain.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Balance:  req.Balance,
		Active:   req.Active,
		Audit:    req.Audit,
		Redirect: req.Redirect,
		Avatar:   req.Avatar,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Caffeine:  p.Caffeine,
		Alcohol:   p.Alcohol,
		Energy:    p.Energy,
		Sugar:     p.Sugar,
		Price:     p.Price,
		Active:    p.Active,
		Image:     p.Image,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toProductResponses(ps []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Balance:   u.Balance,
		Active:    u.Active,
		Audit:     u.Audit,
		Redirect:  u.Redirect,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toUserResponses(us []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toStatsResponse(s domain.UserStats) usersStatsResponse {
	return usersStatsResponse{
		UserCount:   s.UserCount,
		ActiveCount: s.ActiveCount,
		BalanceSum:  s.BalanceSum,
	}
}
