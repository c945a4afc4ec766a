package prompts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/alisyos/contract-scanner/pkg/blobstore"
)

// BlobKey names the blob holding the serialized definition set.
// The set is loaded eagerly and rewritten in full on every mutation.
const BlobKey = "system-prompts.json"

type registry struct {
	store  blobstore.System
	logger *slog.Logger

	// mu serializes every read-modify-write cycle so that sibling
	// deactivation and target activation commit as one unit.
	mu sync.Mutex
}

// New creates a prompt registry implementing the System interface,
// persisted as a single named blob.
func New(store blobstore.System, logger *slog.Logger) System {
	return &registry{
		store:  store,
		logger: logger.With("system", "prompts"),
	}
}

func (r *registry) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *registry) List(ctx context.Context) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx), nil
}

func (r *registry) ActiveFor(ctx context.Context, category Category) (*Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.load(ctx)
	for i := range set {
		if set[i].Category == category && set[i].Active {
			return &set[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoActive, category)
}

func (r *registry) Create(ctx context.Context, cmd CreateCommand) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.load(ctx)

	p := Prompt{
		ID:           freshID(set),
		Name:         cmd.Name,
		Description:  cmd.Description,
		Content:      cmd.Content,
		Category:     cmd.Category,
		Active:       cmd.Active,
		LastModified: time.Now(),
	}

	if p.Active {
		deactivateSiblings(set, p.Category, p.ID)
	}

	set = append(set, p)
	if err := r.save(ctx, set); err != nil {
		return nil, err
	}

	r.logger.Info("prompt created", "id", p.ID, "name", p.Name, "category", p.Category)
	return set, nil
}

// Update merges non-nil fields into the definition with the given id and
// refreshes its timestamp. An unknown id is a no-op: the unchanged set is
// returned without error.
func (r *registry) Update(ctx context.Context, id string, cmd UpdateCommand) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.load(ctx)

	i := slices.IndexFunc(set, func(p Prompt) bool { return p.ID == id })
	if i == -1 {
		r.logger.Warn("update skipped, prompt not found", "id", id)
		return set, nil
	}

	p := &set[i]
	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.Description != nil {
		p.Description = *cmd.Description
	}
	if cmd.Content != nil {
		p.Content = *cmd.Content
	}
	if cmd.Category != nil {
		p.Category = *cmd.Category
	}
	if cmd.Active != nil {
		p.Active = *cmd.Active
	}
	p.LastModified = time.Now()

	if p.Active {
		deactivateSiblings(set, p.Category, p.ID)
	}

	if err := r.save(ctx, set); err != nil {
		return nil, err
	}

	r.logger.Info("prompt updated", "id", p.ID, "name", p.Name)
	return set, nil
}

// Delete removes the definition with the given id. Restricting deletion to
// user-created definitions is the caller's responsibility; the registry
// deletes built-ins just the same.
func (r *registry) Delete(ctx context.Context, id string) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.load(ctx)

	i := slices.IndexFunc(set, func(p Prompt) bool { return p.ID == id })
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	set = slices.Delete(set, i, i+1)
	if err := r.save(ctx, set); err != nil {
		return nil, err
	}

	r.logger.Info("prompt deleted", "id", id)
	return set, nil
}

// Activate marks the definition with the given id active after deactivating
// every other definition in its category. The whole cycle runs under the
// registry lock, so no observer can see two active definitions per category.
func (r *registry) Activate(ctx context.Context, id string) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.load(ctx)

	i := slices.IndexFunc(set, func(p Prompt) bool { return p.ID == id })
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	deactivateSiblings(set, set[i].Category, id)
	set[i].Active = true
	set[i].LastModified = time.Now()

	if err := r.save(ctx, set); err != nil {
		return nil, err
	}

	r.logger.Info("prompt activated", "id", id, "category", set[i].Category)
	return set, nil
}

func (r *registry) Reset(ctx context.Context) ([]Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := Defaults()
	if err := r.save(ctx, set); err != nil {
		return nil, err
	}

	r.logger.Info("prompts reset to defaults")
	return set, nil
}

// load returns the persisted definition set, falling back to the built-in
// defaults when no blob exists or the stored blob cannot be decoded.
func (r *registry) load(ctx context.Context) []Prompt {
	data, err := r.store.Read(ctx, BlobKey)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			r.logger.Warn("prompt blob read failed, using defaults", "error", err)
		}
		return Defaults()
	}

	var set []Prompt
	if err := json.Unmarshal(data, &set); err != nil {
		r.logger.Warn("prompt blob decode failed, using defaults", "error", err)
		return Defaults()
	}

	return set
}

func (r *registry) save(ctx context.Context, set []Prompt) error {
	if err := verifyExclusive(set); err != nil {
		return err
	}

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode prompts: %w", err)
	}

	if err := r.store.Write(ctx, BlobKey, data); err != nil {
		return fmt.Errorf("persist prompts: %w", err)
	}

	return nil
}

// verifyExclusive checks the registry invariant before any set is persisted:
// at most one active definition per category.
func verifyExclusive(set []Prompt) error {
	active := make(map[Category]string, len(categories))
	for _, p := range set {
		if !p.Active {
			continue
		}
		if prior, ok := active[p.Category]; ok {
			return fmt.Errorf("%w: %s (%s, %s)", ErrCategoryConflict, p.Category, prior, p.ID)
		}
		active[p.Category] = p.ID
	}
	return nil
}

func deactivateSiblings(set []Prompt, category Category, id string) {
	for i := range set {
		if set[i].Category == category && set[i].ID != id {
			set[i].Active = false
		}
	}
}

func freshID(set []Prompt) string {
	base := fmt.Sprintf("custom-%d", time.Now().UnixMilli())

	id := base
	for n := 2; slices.ContainsFunc(set, func(p Prompt) bool { return p.ID == id }); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}
