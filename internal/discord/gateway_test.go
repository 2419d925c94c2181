package discord_test

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	wardendiscord "github.com/robalyx/warden/internal/discord"
	"github.com/stretchr/testify/assert"
)

func TestToInbound(t *testing.T) {
	t.Parallel()

	guildID := snowflake.ID(10)
	in := wardendiscord.ToInbound(discord.Message{
		ID:        snowflake.ID(30),
		ChannelID: snowflake.ID(20),
		GuildID:   &guildID,
		Author:    discord.User{ID: snowflake.ID(5), Username: "poster"},
		Content:   "hello",
	})

	assert.Equal(t, uint64(10), in.GuildID)
	assert.Equal(t, uint64(20), in.ChannelID)
	assert.Equal(t, uint64(30), in.MessageID)
	assert.Equal(t, uint64(5), in.AuthorID)
	assert.Equal(t, "poster", in.AuthorName)
	assert.False(t, in.AuthorBot)
	assert.False(t, in.IsDM())

	dm := wardendiscord.ToInbound(discord.Message{
		ChannelID: snowflake.ID(21),
		Author:    discord.User{ID: snowflake.ID(6), Username: "sender", Bot: true},
	})
	assert.True(t, dm.IsDM())
	assert.True(t, dm.AuthorBot)
}
