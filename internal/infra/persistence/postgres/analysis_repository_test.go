package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"resumecoach/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	listAnalysisQuery = `^` + regexp.QuoteMeta(`SELECT * FROM "analysis_history" WHERE user_id = $1 ORDER BY "timestamp" DESC,id DESC LIMIT $2`) + `$`
	analysisColumns   = []string{"id", "user_id", "timestamp", "resume_text", "job_description", "ai_feedback"}
)

func TestAnalysisRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &analysisRepository{
		db:  db,
		now: func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
	}

	userID := uuid.New()
	id := uuid.New()
	mock.ExpectQuery(`^INSERT INTO "analysis_history" \(.+\) VALUES \(.+\) RETURNING "id"$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	record := &entity.AnalysisRecord{UserID: userID, ResumeText: "resume", AIFeedback: "feedback"}
	require.NoError(t, repo.Create(context.Background(), record))

	assert.Equal(t, id, record.ID)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), record.Timestamp)
}

func TestAnalysisRepository_FindByUser_NewestFirstWithLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)

	userID := uuid.New()
	newer, older := uuid.New(), uuid.New()
	jd := "Go developer"
	mock.ExpectQuery(listAnalysisQuery).
		WithArgs(userID, 20).
		WillReturnRows(sqlmock.NewRows(analysisColumns).
			AddRow(newer.String(), userID.String(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "resume 2", jd, "feedback 2").
			AddRow(older.String(), userID.String(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "resume 1", nil, "feedback 1"))

	records, err := repo.FindByUser(context.Background(), userID, 20)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer, records[0].ID)
	assert.Equal(t, &jd, records[0].JobDescription)
	assert.Equal(t, older, records[1].ID)
	assert.Nil(t, records[1].JobDescription)
}

func TestAnalysisRepository_FindByUser_ScopedToUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)

	userA, userB := uuid.New(), uuid.New()

	// B's record is older; each listing binds only its own user id.
	mock.ExpectQuery(listAnalysisQuery).
		WithArgs(userA, 20).
		WillReturnRows(sqlmock.NewRows(analysisColumns).
			AddRow(uuid.New().String(), userA.String(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "resume a", nil, "feedback a"))
	mock.ExpectQuery(listAnalysisQuery).
		WithArgs(userB, 20).
		WillReturnRows(sqlmock.NewRows(analysisColumns).
			AddRow(uuid.New().String(), userB.String(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "resume b", nil, "feedback b"))

	recordsA, err := repo.FindByUser(context.Background(), userA, 20)
	require.NoError(t, err)
	recordsB, err := repo.FindByUser(context.Background(), userB, 20)
	require.NoError(t, err)

	require.Len(t, recordsA, 1)
	assert.Equal(t, userA, recordsA[0].UserID)
	require.Len(t, recordsB, 1)
	assert.Equal(t, userB, recordsB[0].UserID)
}

func TestAnalysisRepository_FindByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalysisRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(listAnalysisQuery).
		WithArgs(userID, 5).
		WillReturnRows(sqlmock.NewRows(analysisColumns))

	records, err := repo.FindByUser(context.Background(), userID, 5)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
