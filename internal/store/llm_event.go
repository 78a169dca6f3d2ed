package store

import (
	"context"
	"fmt"

	"github.com/abhisek/autodidact/ent"
	"github.com/abhisek/autodidact/ent/llmrequestevent"
	"github.com/abhisek/autodidact/internal/llm"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(ev.Provider).
		SetModel(ev.Model).
		SetPurpose(ev.Purpose).
		SetInputTokens(ev.InputTokens).
		SetOutputTokens(ev.OutputTokens).
		SetLatencyMs(ev.LatencyMs).
		SetSuccess(ev.Success).
		SetErrorMessage(ev.ErrorMessage).
		SetRequestBody(ev.RequestBody).
		SetResponseBody(ev.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentEvents(ctx context.Context, limit int) ([]EventRow, error) {
	if limit <= 0 {
		limit = 20
	}
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]EventRow, len(events))
	for i, e := range events {
		out[i] = eventRow(e)
		out[i].RequestBody = ""
		out[i].ResponseBody = ""
	}
	return out, nil
}

func (r *eventRepo) Event(ctx context.Context, id int) (*EventRow, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	row := eventRow(e)
	return &row, nil
}

func eventRow(e *ent.LLMRequestEvent) EventRow {
	return EventRow{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}

func (r *eventRepo) Usage(ctx context.Context) ([]UsageRow, error) {
	var rows []struct {
		Provider  string `json:"provider"`
		Purpose   string `json:"purpose"`
		Requests  int    `json:"requests"`
		InTokens  int    `json:"in_tokens"`
		OutTokens int    `json:"out_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldProvider, llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "requests"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}

	out := make([]UsageRow, len(rows))
	for i, row := range rows {
		out[i] = UsageRow{
			Provider:     row.Provider,
			Purpose:      row.Purpose,
			Requests:     row.Requests,
			InputTokens:  row.InTokens,
			OutputTokens: row.OutTokens,
		}
	}
	return out, nil
}
