package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/autodidact/ent"
	"github.com/abhisek/autodidact/ent/checkpoint"
	"github.com/abhisek/autodidact/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateSession(ctx context.Context, sessionID string, projectID, nodeID int) error {
	_, err := r.client.Session.Create().
		SetSessionID(sessionID).
		SetProjectID(projectID).
		SetNodeID(nodeID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepo) CompleteSession(ctx context.Context, sessionID string, finalScore float64) error {
	return r.endSession(ctx, sessionID, "completed", finalScore)
}

func (r *sessionRepo) AbandonSession(ctx context.Context, sessionID string) error {
	return r.endSession(ctx, sessionID, "abandoned", 0)
}

func (r *sessionRepo) endSession(ctx context.Context, sessionID, status string, finalScore float64) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetStatus(status).
		SetFinalScore(finalScore).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("end session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("end session %s: not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) SaveCheckpoint(ctx context.Context, sessionID, phase string, state json.RawMessage) error {
	_, err := r.client.Checkpoint.Create().
		SetSessionID(sessionID).
		SetPhase(phase).
		SetState(state).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint for %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepo) LatestCheckpoint(ctx context.Context, sessionID string) (*CheckpointData, error) {
	cp, err := r.client.Checkpoint.Query().
		Where(checkpoint.SessionID(sessionID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt), ent.Desc(checkpoint.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest checkpoint for %s: %w", sessionID, err)
	}
	return &CheckpointData{
		Phase:     cp.Phase,
		State:     cp.State,
		CreatedAt: cp.CreatedAt,
	}, nil
}

func (r *sessionRepo) ActiveSession(ctx context.Context, nodeID int) (string, error) {
	s, err := r.client.Session.Query().
		Where(session.NodeID(nodeID), session.Status("active")).
		Order(ent.Desc(session.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query active session for node %d: %w", nodeID, err)
	}
	return s.SessionID, nil
}
