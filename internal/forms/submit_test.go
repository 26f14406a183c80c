package forms

import (
	"context"
	"testing"

	"github.com/sivadev/folio/internal/errs"
)

func validCommentValues() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"content": "Great project!",
	}
}

func TestSubmitBlockedWhileGateUnverified(t *testing.T) {
	gate := NewGate("site-key") // real token required, none provided
	calls := 0
	sub := NewSubmitter(CommentSchema(), gate, func(ctx context.Context, values map[string]string, token string) error {
		calls++
		return nil
	})

	err := sub.Submit(context.Background(), validCommentValues())
	if err == nil {
		t.Fatal("Submit() succeeded with unverified gate")
	}
	if errs.KindOf(err) != errs.KindGate {
		t.Errorf("KindOf(err) = %v, want gate", errs.KindOf(err))
	}
	if calls != 0 {
		t.Errorf("send called %d times, want 0", calls)
	}
	if sub.Notice() != GateMessage {
		t.Errorf("Notice() = %q, want gate message", sub.Notice())
	}
	if sub.State() != StateIdle {
		t.Errorf("State() = %v, want idle", sub.State())
	}
}

func TestSubmitBlockedWhileInvalid(t *testing.T) {
	gate := NewGate("")
	calls := 0
	sub := NewSubmitter(CommentSchema(), gate, func(ctx context.Context, values map[string]string, token string) error {
		calls++
		return nil
	})

	values := validCommentValues()
	values["content"] = "Hi"

	err := sub.Submit(context.Background(), values)
	if errs.KindOf(err) != errs.KindValidation {
		t.Errorf("KindOf(err) = %v, want validation", errs.KindOf(err))
	}
	if calls != 0 {
		t.Errorf("send called %d times, want 0", calls)
	}
}

func TestSubmitSuccessClearsValuesAndResetsGate(t *testing.T) {
	gate := NewGate("site-key")
	gate.Verify("tok-123")

	var gotToken string
	completions := 0
	sub := NewSubmitter(CommentSchema(), gate,
		func(ctx context.Context, values map[string]string, token string) error {
			gotToken = token
			return nil
		},
		WithOnSuccess(func() { completions++ }),
		WithSuccessText("Your comment has been submitted!"),
	)

	values := validCommentValues()
	keyBefore := gate.MountKey()

	if !sub.CanSubmit(values) {
		t.Fatal("CanSubmit() = false for valid, verified form")
	}
	if err := sub.Submit(context.Background(), values); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if gotToken != "tok-123" {
		t.Errorf("send received token %q", gotToken)
	}
	for field, v := range values {
		if v != "" {
			t.Errorf("field %q = %q after success, want cleared", field, v)
		}
	}
	if gate.Verified() {
		t.Error("gate still verified after success")
	}
	if gate.MountKey() != keyBefore+1 {
		t.Errorf("MountKey() = %d, want %d", gate.MountKey(), keyBefore+1)
	}
	if completions != 1 {
		t.Errorf("completion callback ran %d times, want 1", completions)
	}
	if sub.State() != StateSuccess {
		t.Errorf("State() = %v, want success", sub.State())
	}
	if sub.Notice() != "Your comment has been submitted!" {
		t.Errorf("Notice() = %q", sub.Notice())
	}
}

func TestSubmitFailureKeepsValuesAndShowsMessage(t *testing.T) {
	gate := NewGate("site-key")
	gate.Verify("tok-123")
	sub := NewSubmitter(CommentSchema(), gate, func(ctx context.Context, values map[string]string, token string) error {
		return errs.Server(409, "Name already used")
	})

	values := validCommentValues()
	err := sub.Submit(context.Background(), values)
	if err == nil {
		t.Fatal("Submit() succeeded, want failure")
	}

	if values["name"] != "Jane Doe" || values["content"] != "Great project!" {
		t.Error("field values changed after failure, want kept")
	}
	if sub.Notice() != "Name already used" {
		t.Errorf("Notice() = %q, want exact server message", sub.Notice())
	}
	if sub.State() != StateError {
		t.Errorf("State() = %v, want error", sub.State())
	}
	// The token survives a failure unless the widget itself expired.
	if !gate.Verified() {
		t.Error("gate token cleared by failed submission")
	}
}

func TestSubmitRejectsReentrantAttempt(t *testing.T) {
	gate := NewGate("")
	sub := NewSubmitter(CommentSchema(), gate, func(ctx context.Context, values map[string]string, token string) error {
		return nil
	})

	values := validCommentValues()
	if err := sub.Begin(values); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	// A second attempt while submitting must be rejected without touching
	// the in-flight state.
	err := sub.Begin(values)
	if errs.KindOf(err) != errs.KindInput {
		t.Errorf("KindOf(err) = %v, want input", errs.KindOf(err))
	}
	if sub.State() != StateSubmitting {
		t.Errorf("State() = %v, want submitting", sub.State())
	}

	sub.Finish(nil)
	if sub.State() != StateSuccess {
		t.Errorf("State() = %v after Finish(nil), want success", sub.State())
	}
}

func TestSubmitClearsPriorOutcomeOnNextAttempt(t *testing.T) {
	gate := NewGate("")
	fail := true
	sub := NewSubmitter(CommentSchema(), gate, func(ctx context.Context, values map[string]string, token string) error {
		if fail {
			return errs.Server(500, "boom")
		}
		return nil
	})

	_ = sub.Submit(context.Background(), validCommentValues())
	if sub.Notice() != "boom" {
		t.Fatalf("Notice() = %q", sub.Notice())
	}

	fail = false
	if err := sub.Submit(context.Background(), validCommentValues()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sub.State() != StateSuccess {
		t.Errorf("State() = %v, want success after retry", sub.State())
	}
}

type blankError struct{}

func (blankError) Error() string { return "" }

func TestFinishFallbackText(t *testing.T) {
	gate := NewGate("")
	sub := NewSubmitter(CommentSchema(), gate,
		func(ctx context.Context, values map[string]string, token string) error {
			return blankError{}
		},
		WithFallbackText("An error occurred while submitting the comment. Please try again."),
	)

	_ = sub.Submit(context.Background(), validCommentValues())
	if sub.Notice() != "An error occurred while submitting the comment. Please try again." {
		t.Errorf("Notice() = %q, want fallback text", sub.Notice())
	}
}
