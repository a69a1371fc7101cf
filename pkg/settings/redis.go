package settings

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/errors"
	"github.com/corkboard/corkboard/pkg/observability"
)

// Redis key suffixes holding the grid policy. Values are plain strings:
// "true"/"false"/"1"/"0" for the snap flag, a decimal float for the size.
const (
	keySnapToGrid = "grid:snap_to_grid"
	keyGridSize   = "grid:size"
)

// redisReadTimeout bounds each per-drag-update read. Drag updates run inside
// the UI event turn, so a slow or unreachable backend must fail fast into
// the fallback rather than stall the interaction.
const redisReadTimeout = 250 * time.Millisecond

// Redis is a policy provider reading the grid policy from a shared Redis
// instance on every call, so several board processes can follow one policy.
// Connection failures, missing keys, and malformed values all fall back to
// the default policy.
type Redis struct {
	client   *redis.Client
	prefix   string
	fallback canvas.GridPolicy
}

// NewRedis creates a Redis-backed provider. prefix namespaces the policy
// keys (e.g. "corkboard:"); fallback is returned on any read failure.
func NewRedis(client *redis.Client, prefix string, fallback canvas.GridPolicy) *Redis {
	return &Redis{client: client, prefix: prefix, fallback: fallback}
}

// GridPolicy implements canvas.PolicyProvider.
func (r *Redis) GridPolicy() canvas.GridPolicy {
	ctx, cancel := context.WithTimeout(context.Background(), redisReadTimeout)
	defer cancel()
	start := time.Now()

	vals, err := r.client.MGet(ctx, r.prefix+keySnapToGrid, r.prefix+keyGridSize).Result()
	if err != nil {
		observability.Settings().OnPolicyFallback(ctx,
			BackendRedis, errors.Wrap(errors.ErrCodeSettingsBackend, err, "read grid policy"))
		return r.fallback
	}

	policy, err := parsePolicy(vals[0], vals[1])
	if err != nil {
		observability.Settings().OnPolicyFallback(ctx, BackendRedis, err)
		return r.fallback
	}

	observability.Settings().OnPolicyRead(ctx, BackendRedis, time.Since(start))
	return policy
}

// parsePolicy converts the two raw MGET results into a validated policy.
// A nil value means the key is unset, which is treated as a parse failure so
// the caller falls back.
func parsePolicy(rawSnap, rawSize any) (canvas.GridPolicy, error) {
	snapStr, ok := rawSnap.(string)
	if !ok {
		return canvas.GridPolicy{}, errors.New(errors.ErrCodeSettingsBackend, "snap_to_grid key unset")
	}
	snap, err := strconv.ParseBool(snapStr)
	if err != nil {
		return canvas.GridPolicy{}, errors.Wrap(errors.ErrCodeSettingsBackend, err, "parse snap_to_grid %q", snapStr)
	}

	policy := canvas.GridPolicy{SnapToGrid: snap}
	if !snap {
		return policy, nil
	}

	sizeStr, ok := rawSize.(string)
	if !ok {
		return canvas.GridPolicy{}, errors.New(errors.ErrCodeSettingsBackend, "grid size key unset with snapping enabled")
	}
	policy.GridSize, err = strconv.ParseFloat(sizeStr, 64)
	if err != nil {
		return canvas.GridPolicy{}, errors.Wrap(errors.ErrCodeSettingsBackend, err, "parse grid size %q", sizeStr)
	}
	if err := errors.ValidateGridPolicy(policy.SnapToGrid, policy.GridSize); err != nil {
		return canvas.GridPolicy{}, err
	}
	return policy, nil
}
