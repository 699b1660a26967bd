package services

import (
	"context"
	"testing"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChat(db *repotest.DB, from *models.User, at time.Time, read bool) {
	db.AddChat(models.Chat{
		SenderID:       from.ID,
		SenderType:     models.PartyUser,
		ReceiverID:     models.AdminSenderID,
		ReceiverType:   models.PartyAdmin,
		Message:        "halo admin",
		ReadBySender:   true,
		ReadByReceiver: read,
		CreatedAt:      at,
	})
}

func TestChatService_RoomsUsersThenMitras(t *testing.T) {
	db := repotest.New()
	budi := db.AddUser(models.User{Nama: "Budi", Email: "budi@mail.com"})
	siti := db.AddUser(models.User{Nama: "Siti", Email: "siti@mail.com"})
	toko := db.AddMitra(models.Mitra{NamaToko: "Toko Sehat", Email: "toko@mail.com"})

	seedChat(db, budi, ago(3*time.Hour), false)
	seedChat(db, budi, ago(2*time.Hour), false)
	seedChat(db, siti, ago(time.Hour), true)
	db.AddChat(models.Chat{
		SenderID: toko.ID, SenderType: models.PartyMitra,
		ReceiverID: models.AdminSenderID, ReceiverType: models.PartyAdmin,
		Message: "halo", CreatedAt: ago(time.Minute),
	})

	s := NewChatService(db.Chats)
	rooms, err := s.Rooms(context.Background())
	require.NoError(t, err)

	require.Len(t, rooms, 3)
	assert.Equal(t, "Siti", rooms[0].Name, "user dengan pesan terbaru dulu")
	assert.Equal(t, int64(0), rooms[0].UnreadCount)
	assert.Equal(t, "Budi", rooms[1].Name)
	assert.Equal(t, int64(2), rooms[1].UnreadCount)
	assert.Equal(t, models.PartyMitra, rooms[2].Type, "mitra setelah user")
}

func TestChatService_MessagesMarksRead(t *testing.T) {
	db := repotest.New()
	budi := db.AddUser(models.User{Nama: "Budi"})
	seedChat(db, budi, ago(time.Hour), false)
	s := NewChatService(db.Chats)
	ctx := context.Background()

	msgs, err := s.Messages(ctx, models.PartyUser, budi.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].ReadByReceiver, "respons memuat flag baca yang baru diset")

	rooms, err := s.Rooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rooms[0].UnreadCount)
}

func TestChatService_SendTrimsAndOrdersAscending(t *testing.T) {
	db := repotest.New()
	budi := db.AddUser(models.User{Nama: "Budi"})
	seedChat(db, budi, ago(time.Hour), false)
	s := NewChatService(db.Chats)

	msgs, err := s.Send(context.Background(), models.PartyUser, budi.ID, "  Baik, kami cek  ")
	require.NoError(t, err)

	require.Len(t, msgs, 2)
	last := msgs[1]
	assert.Equal(t, "Baik, kami cek", last.Message)
	assert.Equal(t, models.AdminSenderID, last.SenderID)
	assert.Equal(t, models.PartyAdmin, last.SenderType)
	assert.Equal(t, budi.ID, last.ReceiverID)
	assert.True(t, last.ReadBySender)
	assert.False(t, last.ReadByReceiver)
	assert.True(t, msgs[0].CreatedAt.Before(last.CreatedAt))
}

func TestChatService_SendRejectsEmpty(t *testing.T) {
	db := repotest.New()
	s := NewChatService(db.Chats)

	_, err := s.Send(context.Background(), models.PartyUser, "u1", "   \n\t")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, db.AllChats())

	_, err = s.Send(context.Background(), "admin", "u1", "halo")
	assert.ErrorIs(t, err, ErrInvalidTarget)
}
