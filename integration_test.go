// integration_test.go — end-to-end scenarios for user errors and their kinds.
package usererror_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xgx-io/usererror"
)

// MyError is the canonical consumer subclass: it supplies a default message
// and defers everything else to the base construction.
var MyError = usererror.Base.Extend("MyError", usererror.WithDefaultMessage("Boom!"))

// RateLimitError embeds *usererror.UserError and adds its own field.
type RateLimitError struct {
	*usererror.UserError
	Retries int
}

var rateLimitKind = usererror.KindOf[RateLimitError](MyError)

func NewRateLimitError(retries int) *RateLimitError {
	return &RateLimitError{
		UserError: rateLimitKind.NewSkip(fmt.Sprintf("rate limited after %d retries", retries), 1),
		Retries:   retries,
	}
}

func TestIntegration_UserError(t *testing.T) {
	err := usererror.New("Bang!")
	require.Equal(t, "UserError", err.Name())
	require.Equal(t, "Bang!", err.Message())
	require.Implements(t, (*error)(nil), err)
	require.True(t, usererror.IsUserError(err))
}

func TestIntegration_SubclassInstance(t *testing.T) {
	err := MyError.New("Bang!")
	require.Equal(t, "MyError", err.Name())
	require.Equal(t, "Bang!", err.Message())
	require.True(t, usererror.IsUserError(err))
	require.True(t, usererror.IsKind(err, usererror.Base))
	require.True(t, MyError.Is(err))
}

func TestIntegration_SubclassDefaultMessage(t *testing.T) {
	err := MyError.Default()
	require.Equal(t, "MyError", err.Name())
	require.Equal(t, "Boom!", err.Message())
	require.EqualError(t, err, "MyError: Boom!")
}

func TestIntegration_EmbeddedSubclass(t *testing.T) {
	var err error = NewRateLimitError(3)

	require.EqualError(t, err, "RateLimitError: rate limited after 3 retries")
	require.True(t, usererror.IsUserError(err))
	require.True(t, usererror.IsKind(err, MyError))
	require.Equal(t, "RateLimitError", usererror.NameOf(err))

	var rl *RateLimitError
	require.ErrorAs(t, fmt.Errorf("call api: %w", err), &rl)
	require.Equal(t, 3, rl.Retries)

	stk := rl.Stack()
	require.NotEmpty(t, stk)
	require.Contains(t, stk[0].Function, "TestIntegration_EmbeddedSubclass")
}

func TestIntegration_ThrownThroughLayers(t *testing.T) {
	validate := func(name string) error {
		if name == "" {
			return MyError.New("name required")
		}
		return nil
	}
	handle := func(name string) error {
		if err := validate(name); err != nil {
			return fmt.Errorf("handle %q: %w", name, err)
		}
		return nil
	}

	err := handle("")
	require.Error(t, err)
	ue, ok := usererror.As(err)
	require.True(t, ok)
	require.Equal(t, "MyError", ue.Name())
	require.Equal(t, "name required", usererror.MessageOf(err))
	require.NoError(t, handle("ok"))

	joined := errors.Join(errors.New("io"), err)
	require.True(t, MyError.Is(joined))
}

func TestIntegration_ConcurrentConstruction(t *testing.T) {
	const workers = 32
	var wg sync.WaitGroup
	errs := make([]*usererror.UserError, workers)
	for i := 0; i < workers; i++ {
		i := i // per-iteration copy (Go 1.22 loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				errs[i] = MyError.Newf("worker %d", i)
			} else {
				errs[i] = usererror.Newf("worker %d", i)
			}
		}()
	}
	wg.Wait()

	for i, e := range errs {
		require.Equal(t, fmt.Sprintf("worker %d", i), e.Message())
		if i%2 == 0 {
			require.Equal(t, "MyError", e.Name())
		} else {
			require.Equal(t, "UserError", e.Name())
		}
	}
}
