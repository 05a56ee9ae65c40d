package drafts

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"stay-client/internal/pkg/config"
	"stay-client/internal/pkg/session"
)

type entry struct {
	owner    string
	workflow *Workflow
}

// Registry holds the live drafts of every session. Idle drafts expire after
// the configured TTL and are closed on eviction.
type Registry struct {
	deps   Dependencies
	drafts *expirable.LRU[string, entry]
	logger *slog.Logger
}

func NewRegistry(deps Dependencies, cfg config.DraftConfig, logger *slog.Logger) *Registry {
	r := &Registry{deps: deps, logger: logger}
	r.drafts = expirable.NewLRU[string, entry](cfg.Capacity, r.evicted, cfg.TTL)
	return r
}

func (r *Registry) evicted(id string, e entry) {
	e.workflow.Close()
	r.logger.Debug("draft evicted", "draft_id", id, "state", e.workflow.View().State)
}

// Open starts a workflow for unitID. Drafts whose load failed are not kept;
// their view still carries the failure notice and navigation intent.
func (r *Registry) Open(ctx context.Context, sess session.Session, unitID string) (View, error) {
	wf := NewWorkflow(uuid.NewString(), r.deps)
	view, err := wf.Load(ctx, sess, unitID)
	if err != nil {
		return view, err
	}

	r.drafts.Add(wf.ID(), entry{owner: sess.Owner(), workflow: wf})
	r.logger.Info("draft opened", "draft_id", wf.ID(), "unit_id", unitID)
	return view, nil
}

// Get returns the draft only to the session that opened it, matched on the
// credential's subject even after it expired. A draft owned by someone else
// is reported as missing. Every hit restarts the idle timer.
func (r *Registry) Get(sess session.Session, id string) (*Workflow, error) {
	e, ok := r.drafts.Get(id)
	if !ok || e.owner == "" || e.owner != sess.Owner() {
		return nil, ErrDraftNotFound
	}
	r.drafts.Add(id, e)
	return e.workflow, nil
}

// Submit sends the draft and forgets it once the reservation is confirmed.
// The confirmed view is returned this one time.
func (r *Registry) Submit(ctx context.Context, sess session.Session, id string) (View, error) {
	wf, err := r.Get(sess, id)
	if err != nil {
		return View{}, err
	}
	view, err := wf.Submit(ctx, sess)
	if err == nil && view.State == StateConfirmed {
		r.drafts.Remove(id)
		r.logger.Info("draft confirmed", "draft_id", id, "reservation_id", view.Reservation.ID)
	}
	return view, err
}

func (r *Registry) Discard(sess session.Session, id string) error {
	if _, err := r.Get(sess, id); err != nil {
		return err
	}
	r.drafts.Remove(id)
	return nil
}

func (r *Registry) Len() int {
	return r.drafts.Len()
}
