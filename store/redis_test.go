package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	rediscon "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/store"
)

func Test_RedisStore(t *testing.T) {
	ctx := context.Background()
	redisContainer, err := rediscon.Run(ctx, "redis:7",
		testcontainers.WithConfigModifier(func(config *container.Config) {
			config.Env = []string{
				"ALLOW_EMPTY_PASSWORD=yes",
			}
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	state, err := redisContainer.State(ctx)
	require.NoError(t, err)
	require.True(t, state.Running)

	root := fmt.Sprintf("test-%d", time.Now().Unix())

	host, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	options, err := redis.ParseURL(host)
	require.NoError(t, err)

	client := redis.NewClient(options)

	rs := client.Ping(ctx)
	require.NoError(t, rs.Err(), "failed to connect to Redis")

	st := store.NewRedisStoreManager(client, root)

	tenantID := "tenant1"
	chatID := "chat1"
	msg1 := llms.MessageFromTextParts(llms.RoleHuman, "Hello")
	msg2 := llms.MessageFromTextParts(llms.RoleAI, "Hi there!")

	expErr := "invalid chat context"
	assert.EqualError(t, st.Reset(ctx), expErr)
	assert.EqualError(t, st.Add(ctx, msg1), expErr)
	_, err = st.ListChats(ctx)
	assert.EqualError(t, err, expErr)
	_, err = st.GetChatInfo(ctx, "")
	assert.EqualError(t, err, expErr)
	assert.Empty(t, st.Messages(ctx))

	chatCtx := chatmodel.NewChatContext(tenantID, chatID, nil)
	ctx = chatmodel.WithChatContext(ctx, chatCtx)

	title, err := st.GetChatTitle(ctx, chatID)
	require.NoError(t, err)
	assert.Empty(t, title)

	require.NoError(t, st.Add(ctx, msg1, msg2))

	msgs := st.Messages(ctx)
	require.Len(t, msgs, 2)
	assert.Equal(t, llms.RoleHuman, msgs[0].Role)
	assert.Equal(t, "Hello\n", msgs[0].GetContent())
	assert.Equal(t, llms.RoleAI, msgs[1].Role)
	assert.Equal(t, "Hi there!\n", msgs[1].GetContent())

	// chat info was created on first write
	title, err = st.GetChatTitle(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, "New Chat", title)

	require.NoError(t, st.UpdateChat(ctx, "Weather chat", map[string]any{"topic": "weather"}))
	info, err := st.GetChatInfo(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Weather chat", info.Title)
	assert.Equal(t, "weather", info.Metadata["topic"])
	assert.Len(t, info.Messages, 2)

	chats, err := st.ListChats(ctx)
	require.NoError(t, err)
	assert.Contains(t, chats, chatID)

	tenants, err := st.ListTenants(ctx)
	require.NoError(t, err)
	assert.Contains(t, tenants, tenantID)

	// nothing old enough to clean up
	deleted, err := st.Cleanup(ctx, tenantID, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), deleted)

	// everything is older than a zero cutoff
	deleted, err = st.Cleanup(ctx, tenantID, -time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), deleted)

	require.NoError(t, st.Reset(ctx))
	assert.Empty(t, st.Messages(ctx))
}
