package honeycommb

import (
	"context"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
)

/* User event handlers: idempotent upserts keyed by the platform's
 * numeric user id. Delivery is at-least-once, so created is an upsert
 * too, a duplicate delivery must not fail the pipeline
 */
type userHandlers struct {
	store UserStore
}

func (h userHandlers) created(ctx context.Context, data map[string]any) (webhook.Result, error) {
	id, ok := intField(data, "id")
	if !ok {
		return webhook.Result{}, fmt.Errorf("user payload missing id")
	}

	now := time.Now().UTC()
	user := User{
		HCUserID:      id,
		Name:          strField(data, "name"),
		Email:         strField(data, "email"),
		Username:      strField(data, "username"),
		Status:        UserActive,
		CreatedAt:     timeField(data, "created_at", now),
		UpdatedAt:     now,
		LastWebhookAt: now,
	}
	if err := h.store.Upsert(ctx, user); err != nil {
		return webhook.Result{}, fmt.Errorf("creating user %d: %w", id, err)
	}
	return webhook.Processed("User created"), nil
}

func (h userHandlers) updated(ctx context.Context, data map[string]any) (webhook.Result, error) {
	id, ok := intField(data, "id")
	if !ok {
		return webhook.Result{}, fmt.Errorf("user payload missing id")
	}

	now := time.Now().UTC()
	user := User{
		HCUserID:      id,
		Name:          strField(data, "name"),
		Email:         strField(data, "email"),
		Username:      strField(data, "username"),
		Status:        UserActive,
		CreatedAt:     timeField(data, "created_at", now),
		UpdatedAt:     now,
		LastWebhookAt: now,
	}
	if err := h.store.Upsert(ctx, user); err != nil {
		return webhook.Result{}, fmt.Errorf("updating user %d: %w", id, err)
	}
	return webhook.Processed("User updated"), nil
}

func (h userHandlers) destroyed(ctx context.Context, data map[string]any) (webhook.Result, error) {
	return h.setStatus(ctx, data, UserInactive, "User deactivated")
}

func (h userHandlers) approved(ctx context.Context, data map[string]any) (webhook.Result, error) {
	return h.setStatus(ctx, data, UserApprovedStatus, "User approved")
}

func (h userHandlers) flagged(ctx context.Context, data map[string]any) (webhook.Result, error) {
	return h.setStatus(ctx, data, UserFlaggedStatus, "User flagged")
}

func (h userHandlers) setStatus(ctx context.Context, data map[string]any, status UserStatus, message string) (webhook.Result, error) {
	id, ok := intField(data, "id")
	if !ok {
		return webhook.Result{}, fmt.Errorf("user payload missing id")
	}
	if err := h.store.SetStatus(ctx, id, status); err != nil {
		return webhook.Result{}, fmt.Errorf("setting user %d status %s: %w", id, status, err)
	}
	return webhook.Processed(message), nil
}
