package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(TextResponse("hello"))
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(t.Context(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "hello" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		TextResponse("recovered"),
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(t.Context(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "recovered" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider() // Empty queue fails every call.
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(t.Context(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryMaxTokensIsNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		TextResponse("unreachable"),
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(t.Context(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryInvalidResponseRetriedExactlyOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("not json")}}
	mock := NewMockProvider(bad, bad, TextResponse("never served"))
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(t.Context(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		TextResponse("unreachable"),
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestMockRepeatServesLastResponseForever(t *testing.T) {
	mock := NewMockProvider(TextResponse("first"), TextResponse("again"))
	mock.Repeat = true

	want := []string{"first", "again", "again", "again"}
	for i, expect := range want {
		resp, err := mock.Generate(t.Context(), Request{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if resp.Text() != expect {
			t.Fatalf("call %d: got %q, want %q", i, resp.Text(), expect)
		}
	}
}
