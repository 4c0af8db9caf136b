package transport

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

var errEngineClosed = errors.New("engine is closed")

func TestTemporaryMarksConnectionFailures(t *testing.T) {
	err := Temporary(fmt.Errorf("%w: dial bufnet", ErrConnectionFailed))

	if !IsTemporary(err) {
		t.Fatal("Expected a connection failure to be temporary")
	}
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Expected the wrapped sentinel to match, got %v", err)
	}
	if RetryAfter(err) != 0 {
		t.Errorf("Expected no retry hint, got %v", RetryAfter(err))
	}
	if err.Error() != "connection failed: dial bufnet" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestTemporaryAfterCarriesHint(t *testing.T) {
	err := TemporaryAfter(fmt.Errorf("%w: store chunked 5", errEngineClosed), 250*time.Millisecond)

	if !IsTemporary(err) {
		t.Fatal("Expected a hinted error to be temporary")
	}
	if !errors.Is(err, errEngineClosed) {
		t.Errorf("Expected the engine error to stay matchable, got %v", err)
	}
	if got := RetryAfter(err); got != 250*time.Millisecond {
		t.Errorf("Expected a 250ms hint, got %v", got)
	}
	if !strings.Contains(err.Error(), "retry after 250ms") {
		t.Errorf("Expected the hint in the message, got %q", err.Error())
	}
}

func TestTemporarySurvivesWrapping(t *testing.T) {
	hinted := TemporaryAfter(ErrConnectionFailed, time.Second)

	wrapped := fmt.Errorf("load whole 7: %w", hinted)
	if !IsTemporary(wrapped) || RetryAfter(wrapped) != time.Second {
		t.Errorf("Expected %%w wrapping to keep the mark and hint, got %v", wrapped)
	}

	flattened := errors.New("load whole 7: " + hinted.Error())
	if IsTemporary(flattened) || RetryAfter(flattened) != 0 {
		t.Error("Expected a string copy to lose the mark")
	}
}

func TestPermanentErrorsAreNotTemporary(t *testing.T) {
	for _, err := range []error{
		errEngineClosed,
		ErrCircuitOpen,
		fmt.Errorf("%w: after 3 attempts", ErrMaxRetriesExceeded),
	} {
		if IsTemporary(err) {
			t.Errorf("Expected %v not to be temporary", err)
		}
		if RetryAfter(err) != 0 {
			t.Errorf("Expected no hint on %v", err)
		}
	}
}
