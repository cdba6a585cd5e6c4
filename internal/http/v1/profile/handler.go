package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/versocommerce/storefront/internal/platform/auth"
	"github.com/versocommerce/storefront/internal/platform/timeutil"
	profilesvc "github.com/versocommerce/storefront/internal/service/profile"
)

// Register registers profile endpoints. All operations require a bearer
// credential; the storefront reads these with the token it keeps in durable
// client storage.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profile",
		Summary:       "Create the current user's profile",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		created, err := svc.Create(ctx, user.UID, profilesvc.CreateParams{
			Firstname: input.Body.Firstname,
			Lastname:  input.Body.Lastname,
			Email:     input.Body.Email,
			Phones:    input.Body.Phones,
			Addresses: toServiceAddresses(input.Body.Addresses),
			Marketing: input.Body.Marketing,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCreateOutput{
			Location: "/api/profile",
			Body:     toHTTPProfile(created),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get the current user's profile",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.Get(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/profile",
		Summary:     "Update the current user's profile",
		Description: "Shallow merge: only provided fields change; phones and addresses replace the stored lists wholesale.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		user := auth.UserFromContext(ctx)
		if !hasProfileUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}

		params := profilesvc.UpdateParams{
			Firstname: input.Body.Firstname,
			Lastname:  input.Body.Lastname,
			Email:     input.Body.Email,
			Phones:    input.Body.Phones,
			Marketing: input.Body.Marketing,
		}
		if input.Body.Addresses != nil {
			addrs := toServiceAddresses(*input.Body.Addresses)
			params.Addresses = &addrs
		}

		p, err := svc.Update(ctx, user.UID, params)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileUpdateOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profile",
		Summary:       "Delete the current user's profile",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileDeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		if err := svc.Delete(ctx, user.UID); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func hasProfileUpdateFields(input *ProfileUpdateInput) bool {
	b := input.Body
	return b.Firstname != nil || b.Lastname != nil || b.Email != nil ||
		b.Phones != nil || b.Addresses != nil || b.Marketing != nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profilesvc.ErrAlreadyExists):
		return huma.Error409Conflict("profile already exists")
	default:
		return huma.Error500InternalServerError("profile operation failed")
	}
}

func toServiceAddresses(addrs []AddressBody) []profilesvc.Address {
	out := make([]profilesvc.Address, len(addrs))
	for i, a := range addrs {
		out[i] = profilesvc.Address(a)
	}
	return out
}

func toHTTPAddresses(addrs []profilesvc.Address) []AddressBody {
	out := make([]AddressBody, len(addrs))
	for i, a := range addrs {
		out[i] = AddressBody(a)
	}
	return out
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	phones := p.Phones
	if phones == nil {
		phones = []string{}
	}
	return Profile{
		ID:        p.ID,
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Email:     p.Email,
		Phones:    phones,
		Addresses: toHTTPAddresses(p.Addresses),
		Marketing: p.Marketing,
		Complete:  p.Complete(),
		CreatedAt: timeutil.Time{Time: p.CreatedAt},
		UpdatedAt: timeutil.Time{Time: p.UpdatedAt},
	}
}
