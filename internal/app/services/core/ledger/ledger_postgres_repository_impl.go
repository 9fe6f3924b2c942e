package ledger

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/queries"
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ledgerPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

func NewLedgerPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.AppointmentLedgerRepository {
	return &ledgerPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *ledgerPostgresRepository) Record(ctx context.Context, entry *models.LedgerEntry) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := r.DB.QueryRow(ctx, queries.InsertAppointmentLedgerEntry,
		entry.ProviderAppointmentID,
		entry.AppointmentTypeID,
		entry.Datetime,
		entry.Email,
		entry.Outcome,
		entry.DegradedReason,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.Log.Error("ledgerPostgresRepository.Record error inserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *ledgerPostgresRepository) FindByEmail(ctx context.Context, email string) ([]models.LedgerEntry, error) {
	rows, err := r.DB.Query(ctx, queries.GetAppointmentLedgerEntriesByEmail, email)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.ProviderAppointmentID,
			&entry.AppointmentTypeID,
			&entry.Datetime,
			&entry.Email,
			&entry.Outcome,
			&entry.DegradedReason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return entries, nil
}
