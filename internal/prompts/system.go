package prompts

import "context"

// System defines the public contract for prompt registry operations.
// Mutating operations return the full definition set after the change,
// mirroring what the management UI renders.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Prompt, error)
	ActiveFor(ctx context.Context, category Category) (*Prompt, error)
	Create(ctx context.Context, cmd CreateCommand) ([]Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) ([]Prompt, error)
	Delete(ctx context.Context, id string) ([]Prompt, error)
	Activate(ctx context.Context, id string) ([]Prompt, error)
	Reset(ctx context.Context) ([]Prompt, error)
}
