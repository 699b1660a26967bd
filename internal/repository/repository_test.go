package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcare-admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB membuka gorm postgres di atas sqlmock, dengan config yang sama
// seperti koneksi produksi (default transaction aktif, TranslateError)
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

const (
	selectTopUpForUpdate = `SELECT \* FROM "topup" WHERE id = \$1 .*FOR UPDATE`
	updateTopUpStatus    = `UPDATE "topup" SET "status"=\$1`
	incrementUserSaldo   = `UPDATE "users" SET "saldo"=saldo \+ \$1`
)

func topUpRow(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "nominal", "payment_method", "status"}).
		AddRow("t1", "u1", 25000.0, "bca", status)
}

func TestTopUpRepository_Approve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopUpRepository(db)

	// status & saldo berubah di transaksi yang sama, baris top up dikunci dulu
	mock.ExpectBegin()
	mock.ExpectQuery(selectTopUpForUpdate).WillReturnRows(topUpRow(models.TopUpStatusPending))
	mock.ExpectExec(updateTopUpStatus).
		WithArgs(models.TopUpStatusApproved, sqlmock.AnyArg(), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(incrementUserSaldo).
		WithArgs(25000.0, sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	topup, err := repo.Approve(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", topup.UserID)
	assert.Equal(t, 25000.0, topup.Nominal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopUpRepository_Approve_RollsBackWhenCreditFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopUpRepository(db)
	errSaldo := errors.New("koneksi putus")

	mock.ExpectBegin()
	mock.ExpectQuery(selectTopUpForUpdate).WillReturnRows(topUpRow(models.TopUpStatusPending))
	mock.ExpectExec(updateTopUpStatus).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(incrementUserSaldo).WillReturnError(errSaldo)
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), "t1")
	assert.ErrorIs(t, err, errSaldo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopUpRepository_Approve_RollsBackWhenUserMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopUpRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectTopUpForUpdate).WillReturnRows(topUpRow(models.TopUpStatusPending))
	mock.ExpectExec(updateTopUpStatus).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(incrementUserSaldo).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopUpRepository_Approve_NoCreditForProcessedRows(t *testing.T) {
	tests := []struct {
		status string
		want   error
	}{
		{models.TopUpStatusApproved, ErrAlreadyProcessed},
		{models.TopUpStatusRejected, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTopUpRepository(db)

			// tidak ada UPDATE sama sekali, langsung rollback
			mock.ExpectBegin()
			mock.ExpectQuery(selectTopUpForUpdate).WillReturnRows(topUpRow(tt.status))
			mock.ExpectRollback()

			_, err := repo.Approve(context.Background(), "t1")
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTopUpRepository_Approve_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopUpRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectTopUpForUpdate).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopUpRepository_Reject_AlreadyProcessed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopUpRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "topup" SET "status"=\$1.*WHERE id = \$3 AND status = \$4`).
		WithArgs(models.TopUpStatusRejected, sqlmock.AnyArg(), "t1", models.TopUpStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "topup" WHERE id = \$1`).WillReturnRows(topUpRow(models.TopUpStatusApproved))

	err := repo.Reject(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMitraRepository_UpdateStatus_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMitraRepository(db)

	// admin lain sudah mengubah status duluan: 0 baris ter-update
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "mitra" SET "status"=\$1.*WHERE id = \$3 AND status = \$4`).
		WithArgs(models.MitraStatusVerified, sqlmock.AnyArg(), "m1", models.MitraStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "m1", models.MitraStatusPending, models.MitraStatusVerified)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagihanRepository_UpdateStatus(t *testing.T) {
	done := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	const updateTagihan = `UPDATE "tagihan" SET "completion_date"=\$1,"status"=\$2.*WHERE id = \$4 AND status = \$5`

	t.Run("completed mengisi completion_date", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagihanRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(updateTagihan).
			WithArgs(done, models.TagihanStatusCompleted, sqlmock.AnyArg(), "g1", models.TagihanStatusProcessing).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), "g1", models.TagihanStatusProcessing, models.TagihanStatusCompleted, &done)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status sudah berubah", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagihanRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(updateTagihan).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), "g1", models.TagihanStatusProcessing, models.TagihanStatusCompleted, &done)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddSaldo(t *testing.T) {
	t.Run("user tidak ada", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(incrementUserSaldo).
			WithArgs(10000.0, sqlmock.AnyArg(), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := NewUserRepository(db).AddSaldo(context.Background(), "missing", 10000)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mitra ditambah lewat increment", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "mitra" SET "saldo"=saldo \+ \$1`).
			WithArgs(500.0, sqlmock.AnyArg(), "m1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewMitraRepository(db).AddSaldo(context.Background(), "m1", 500)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_FindRooms_Mitra(t *testing.T) {
	db, mock := newMockDB(t)
	last := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT chat\.sender_id AS id, mitra\.nama_toko AS name, mitra\.email AS email, \$1 AS type.*` +
		`FROM "chat" JOIN mitra ON mitra\.id = chat\.sender_id ` +
		`WHERE .*chat\.receiver_type = \$2 AND chat\.sender_type = \$3.*` +
		`GROUP BY chat\.sender_id, mitra\.nama_toko, mitra\.email ORDER BY last_message_at desc`).
		WithArgs(models.PartyMitra, models.PartyAdmin, models.PartyMitra).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "type", "last_message_at", "unread_count"}).
			AddRow("m1", "Toko Sehat", "toko@mail.com", models.PartyMitra, last, 2))

	rooms, err := NewChatRepository(db).FindRooms(context.Background(), models.PartyMitra)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, models.ChatRoom{
		ID:            "m1",
		Name:          "Toko Sehat",
		Email:         "toko@mail.com",
		Type:          models.PartyMitra,
		LastMessageAt: last,
		UnreadCount:   2,
	}, rooms[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatistikRepository_Aggregate(t *testing.T) {
	db, mock := newMockDB(t)
	since := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	count := func(n int64) *sqlmock.Rows { return sqlmock.NewRows([]string{"count"}).AddRow(n) }

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(count(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "mitra"`).WillReturnRows(count(4))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN status = \$1 .* FROM "topup"`).
		WithArgs(models.TopUpStatusApproved, models.TopUpStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"approved", "pending"}).AddRow(3, 2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total, COALESCE\(SUM\(nominal\), 0\) AS revenue FROM "tagihan" WHERE status = \$1`).
		WithArgs(models.TagihanStatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"total", "revenue"}).AddRow(5, 750000.0))
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS avg FROM "tagihan" WHERE rating IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.26))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE created_at >= \$1`).
		WithArgs(since).
		WillReturnRows(count(2))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(nominal\), 0\) AS revenue FROM "tagihan" WHERE status = \$1 AND order_date >= \$2`).
		WithArgs(models.TagihanStatusCompleted, since).
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(120000.0))

	stats, err := NewStatistikRepository(db).Aggregate(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalMitras)
	assert.Equal(t, int64(2), stats.PendingTopups)
	assert.Equal(t, int64(5), stats.CompletedServices)
	assert.Equal(t, int64(8), stats.TotalTransactions)
	assert.Equal(t, 750000.0, stats.TotalRevenue)
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, int64(2), stats.MonthlyGrowth.Users)
	assert.Equal(t, 120000.0, stats.MonthlyGrowth.Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
