package events

import (
	"pvc/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_RegistrationOrder(t *testing.T) {
	b := NewBridge(&testutil.MockLogger{})
	var calls []string
	b.Subscribe(EventCheckPost, func(Event) { calls = append(calls, "first") })
	b.Subscribe(EventCheckPost, func(Event) { calls = append(calls, "second") })
	b.Subscribe(Wildcard, func(Event) { calls = append(calls, "any") })

	n := b.Notify(EventCheckPost, map[string]any{"views": 3})

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"first", "second", "any"}, calls)
}

func TestNotify_EventShape(t *testing.T) {
	b := NewBridge(&testutil.MockLogger{})
	var got []Event
	b.Subscribe(EventCheckPost, func(e Event) { got = append(got, e) })

	detail := map[string]any{"storage": map[string]any{"name": []any{"pvc_visits[0]"}}}
	b.Notify(EventCheckPost, detail)

	require.Len(t, got, 1)
	assert.Equal(t, EventCheckPost, got[0].Name)
	assert.True(t, got[0].Bubbles)
	assert.Equal(t, detail, got[0].Detail)
}

func TestNotify_OtherEventIgnored(t *testing.T) {
	b := NewBridge(&testutil.MockLogger{})
	called := false
	b.Subscribe("somethingElse", func(Event) { called = true })

	assert.Equal(t, 0, b.Notify(EventCheckPost, nil))
	assert.False(t, called)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	b := NewBridge(&testutil.MockLogger{})
	count := 0
	unsubscribe := b.Subscribe(EventCheckPost, func(Event) { count++ })

	b.Notify(EventCheckPost, nil)
	unsubscribe()
	unsubscribe()
	b.Notify(EventCheckPost, nil)

	assert.Equal(t, 1, count)
}

func TestNotify_SubscribeDuringDispatch(t *testing.T) {
	b := NewBridge(&testutil.MockLogger{})
	late := 0
	b.Subscribe(EventCheckPost, func(Event) {
		b.Subscribe(EventCheckPost, func(Event) { late++ })
	})

	assert.Equal(t, 1, b.Notify(EventCheckPost, nil))
	assert.Equal(t, 0, late)
}

func TestNotify_PanickingListener(t *testing.T) {
	logger := &testutil.MockLogger{}
	b := NewBridge(logger)
	reached := false
	b.Subscribe(EventCheckPost, func(Event) { panic("boom") })
	b.Subscribe(EventCheckPost, func(Event) { reached = true })

	assert.NotPanics(t, func() { b.Notify(EventCheckPost, nil) })
	assert.True(t, reached)
	assert.True(t, logger.Contains("error", "boom"))
}
