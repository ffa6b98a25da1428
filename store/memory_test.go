package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/store"
)

func Test_MemoryStore(t *testing.T) {
	st := store.NewMemoryStore()

	tenantID := "tenant1"
	chatID := "chat1"
	msg1 := llms.MessageFromTextParts(llms.RoleHuman, "Hello")
	msg2 := llms.MessageFromTextParts(llms.RoleAI, "Hi there!")

	ctx := context.Background()
	expErr := "invalid chat context"
	assert.EqualError(t, st.Reset(ctx), expErr)
	assert.EqualError(t, st.Add(ctx, msg1), expErr)
	assert.Empty(t, st.Messages(ctx))

	chatCtx := chatmodel.NewChatContext(tenantID, chatID, nil)
	ctx = chatmodel.WithChatContext(ctx, chatCtx)

	require.NoError(t, st.Add(ctx, msg1, msg2))
	msgs := st.Messages(ctx)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hello\n", msgs[0].GetContent())
	assert.Equal(t, "Hi there!\n", msgs[1].GetContent())

	// another chat does not see these messages
	otherCtx := chatmodel.WithChatContext(context.Background(), chatmodel.NewChatContext(tenantID, "chat2", nil))
	assert.Empty(t, st.Messages(otherCtx))

	require.NoError(t, st.Reset(ctx))
	assert.Empty(t, st.Messages(ctx))
}
