package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eui18/recetkit/pkg/notify"
)

func TestNew(t *testing.T) {
	t.Parallel()

	n := notify.New("u-1", notify.TypeSuccess, "pago confirmado", "suscripción activa")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "u-1", n.UserID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Empty(t, n.Remediation)

	withHint := n.WithRemediation(notify.RemediationReauthenticate)
	assert.Equal(t, notify.RemediationReauthenticate, withHint.Remediation)
	// Original is unchanged.
	assert.Empty(t, n.Remediation)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := notify.NewMemory()

	first := notify.New("u-1", notify.TypeSuccess, "a", "")
	second := notify.New("u-1", notify.TypeError, "b", "")
	require.NoError(t, m.Notify(ctx, first))
	require.NoError(t, m.Notify(ctx, second))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Title)

	assert.Len(t, m.Unread(), 2)
	m.MarkRead(first.ID)
	unread := m.Unread()
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var got notify.Notification
	f := notify.Func(func(_ context.Context, n notify.Notification) error {
		got = n
		return nil
	})

	require.NoError(t, f.Notify(context.Background(), notify.New("u-1", notify.TypeInfo, "t", "m")))
	assert.Equal(t, "u-1", got.UserID)
}
