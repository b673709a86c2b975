package graphql

import (
	"context"
	"errors"
	"strings"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pmorken/settings-hub/internal/domain"
	"github.com/pmorken/settings-hub/internal/pkg/ctxlog"
	"github.com/pmorken/settings-hub/internal/pkg/httputil"
	"github.com/pmorken/settings-hub/internal/settings"
)

// Resolver is the root resolver over the settings service.
type Resolver struct {
	svc *settings.Service
}

// NewResolver creates a new root resolver.
func NewResolver(svc *settings.Service) *Resolver {
	return &Resolver{svc: svc}
}

// User resolves Query.user. A missing user is a null result, not an error.
func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	user, err := r.svc.GetUser(ctx, string(args.ID))
	if err != nil {
		return nil, internalError(ctx, err)
	}
	if user == nil {
		return nil, nil
	}
	return &UserResolver{svc: r.svc, user: user}, nil
}

// Users resolves Query.users. Each id is looked up independently; missing ids
// map to null elements in the same position.
func (r *Resolver) Users(ctx context.Context, args struct{ IDs []graphql.ID }) ([]*UserResolver, error) {
	ids := make([]string, 0, len(args.IDs))
	for _, id := range args.IDs {
		ids = append(ids, string(id))
	}

	users, err := r.svc.GetUsers(ctx, ids)
	if err != nil {
		return nil, internalError(ctx, err)
	}

	resolvers := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		if user == nil {
			resolvers = append(resolvers, nil)
			continue
		}
		resolvers = append(resolvers, &UserResolver{svc: r.svc, user: user})
	}
	return resolvers, nil
}

// SettingInput is one requested change in Mutation.updateSettings.
type SettingInput struct {
	Key   string
	Value string
}

// UpdateSettings resolves Mutation.updateSettings. The acting identity is
// whatever the transport middleware extracted for this request; its absence
// is carried through to the event as an explicit null.
func (r *Resolver) UpdateSettings(ctx context.Context, args struct {
	UserID   graphql.ID
	Settings []SettingInput
}) (*SettingsPayloadResolver, error) {
	pairs := make([]domain.KeyValue, 0, len(args.Settings))
	for _, input := range args.Settings {
		pairs = append(pairs, domain.KeyValue{Key: input.Key, Value: input.Value})
	}

	actorID := httputil.ActorIDFromContext(ctx)

	result, err := r.svc.UpdateSettings(ctx, string(args.UserID), pairs, actorID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUserNotFound):
			return nil, &apiError{message: "user not found", code: CodeNotFound}
		case errors.Is(err, settings.ErrNotificationFailed):
			return nil, &apiError{message: "settings update notification failed", code: CodeNotifyFailed}
		default:
			return nil, internalError(ctx, err)
		}
	}

	return &SettingsPayloadResolver{svc: r.svc, result: result}, nil
}

// UserResolver resolves the User type.
type UserResolver struct {
	svc  *settings.Service
	user *domain.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID)
}

func (r *UserResolver) Email() string {
	return r.user.Email
}

func (r *UserResolver) Role() string {
	return strings.ToUpper(string(r.user.Role))
}

func (r *UserResolver) CreatedAt() string {
	return formatTime(r.user.CreatedAt)
}

// SettingsCount is computed on demand so the value always reflects persisted
// state at query time.
func (r *UserResolver) SettingsCount(ctx context.Context) (int32, error) {
	count, err := r.svc.SettingsCount(ctx, r.user.ID)
	if err != nil {
		return 0, internalError(ctx, err)
	}
	return int32(count), nil
}

// SettingResolver resolves the Setting type.
type SettingResolver struct {
	svc     *settings.Service
	setting domain.Setting
}

func (r *SettingResolver) ID() graphql.ID {
	return graphql.ID(r.setting.ID)
}

func (r *SettingResolver) Key() string {
	return r.setting.Key
}

func (r *SettingResolver) Value() string {
	return r.setting.Value
}

func (r *SettingResolver) UpdatedAt() string {
	return formatTime(r.setting.UpdatedAt)
}

// UpdatedBy resolves the stored actor id to a user. A dangling or absent
// actor id resolves to null.
func (r *SettingResolver) UpdatedBy(ctx context.Context) (*UserResolver, error) {
	user, err := r.svc.ResolveUpdatedBy(ctx, r.setting.UpdatedBy)
	if err != nil {
		return nil, internalError(ctx, err)
	}
	if user == nil {
		return nil, nil
	}
	return &UserResolver{svc: r.svc, user: user}, nil
}

// SettingsPayloadResolver resolves the SettingsPayload type.
type SettingsPayloadResolver struct {
	svc    *settings.Service
	result *settings.UpdateResult
}

func (r *SettingsPayloadResolver) Success() bool {
	return true
}

func (r *SettingsPayloadResolver) User() *UserResolver {
	return &UserResolver{svc: r.svc, user: r.result.User}
}

func (r *SettingsPayloadResolver) Settings() []*SettingResolver {
	resolvers := make([]*SettingResolver, 0, len(r.result.Settings))
	for _, setting := range r.result.Settings {
		resolvers = append(resolvers, &SettingResolver{svc: r.svc, setting: setting})
	}
	return resolvers
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func internalError(ctx context.Context, err error) error {
	ctxlog.FromContext(ctx).Error("resolver error", "error", err)
	return &apiError{message: "internal error", code: CodeInternal}
}
