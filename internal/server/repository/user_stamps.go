package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

const userStampColumns = `user_stamp_id, sender_id, receiver_id, stamp_id, after_stamp, created_at, updated_at`

// UserStampsRepository — отправленные между пользователями стампы (таблица user_stamp).
//
// Send и MarkReplied выполняются в одной транзакции: проверки и запись
// либо применяются целиком, либо откатываются.
type UserStampsRepository struct {
	base
}

func NewUserStampsRepository(db *sql.DB, opts ...Option) *UserStampsRepository {
	return &UserStampsRepository{base: newBase(db, opts)}
}

func scanUserStamp(row rowScanner) (sharedModels.UserStamp, error) {
	var us sharedModels.UserStamp
	err := row.Scan(&us.ID, &us.SenderID, &us.ReceiverID, &us.StampID, &us.Replied, &us.CreatedAt, &us.UpdatedAt)
	return us, err
}

// Send создаёт запись об отправке стампа.
//
// Ошибки:
//   - ErrSenderOrReceiverNotFound: нет отправителя или получателя
//   - ErrStampNotFound: нет стампа
//   - ErrInternal: любая ошибка БД (транзакция откатывается)
func (r *UserStampsRepository) Send(ctx context.Context, in models.NewUserStamp) (sharedModels.UserStamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	// после Commit вернёт sql.ErrTxDone, это нормально
	defer tx.Rollback()

	var usersOK bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE user_id=$1)
		    AND EXISTS(SELECT 1 FROM users WHERE user_id=$2)`,
		in.SenderID, in.ReceiverID,
	).Scan(&usersOK)
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	if !usersOK {
		return sharedModels.UserStamp{}, serr.ErrSenderOrReceiverNotFound
	}

	var stampOK bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM stamp WHERE stamp_id=$1)`,
		in.StampID,
	).Scan(&stampOK)
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	if !stampOK {
		return sharedModels.UserStamp{}, serr.ErrStampNotFound
	}

	us, err := scanUserStamp(tx.QueryRowContext(ctx,
		`INSERT INTO user_stamp (sender_id, receiver_id, stamp_id, after_stamp, created_at, updated_at)
		 VALUES ($1,$2,$3,false,$4,$4)
		 RETURNING `+userStampColumns,
		in.SenderID, in.ReceiverID, in.StampID, in.At,
	))
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	return us, nil
}

// MarkReplied переводит after_stamp из false в true.
//
// Строка блокируется (FOR UPDATE), поэтому два одновременных ответа
// не могут оба увидеть false.
//
// Ошибки:
//   - ErrNotFound: записи нет
//   - ErrAlreadyReplied: уже отвечено
//   - ErrInternal: любая ошибка БД (транзакция откатывается)
func (r *UserStampsRepository) MarkReplied(ctx context.Context, id int64, at time.Time) (sharedModels.UserStamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	defer tx.Rollback()

	var replied bool
	err = tx.QueryRowContext(ctx,
		`SELECT after_stamp FROM user_stamp WHERE user_stamp_id=$1 FOR UPDATE`,
		id,
	).Scan(&replied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sharedModels.UserStamp{}, serr.ErrNotFound
		}
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	if replied {
		return sharedModels.UserStamp{}, serr.ErrAlreadyReplied
	}

	us, err := scanUserStamp(tx.QueryRowContext(ctx,
		`UPDATE user_stamp
		    SET after_stamp = true, updated_at = $2
		  WHERE user_stamp_id=$1
		 RETURNING `+userStampColumns,
		id, at,
	))
	if err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return sharedModels.UserStamp{}, serr.ErrInternal
	}
	return us, nil
}

// ListByReceiver — полученные пользователем стампы, новые первыми,
// вместе с текстом/картинкой стампа и именем отправителя.
func (r *UserStampsRepository) ListByReceiver(ctx context.Context, receiverID int64) ([]sharedModels.ReceivedStamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT us.user_stamp_id, us.sender_id, us.receiver_id, us.stamp_id, us.after_stamp,
		        us.created_at, us.updated_at, s.message, s.image_url, u.user_name
		   FROM user_stamp us
		   JOIN stamp s ON s.stamp_id = us.stamp_id
		   JOIN users u ON u.user_id = us.sender_id
		  WHERE us.receiver_id=$1
		  ORDER BY us.created_at DESC, us.user_stamp_id DESC`,
		receiverID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]sharedModels.ReceivedStamp, 0)
	for rows.Next() {
		var rs sharedModels.ReceivedStamp
		err := rows.Scan(
			&rs.ID, &rs.SenderID, &rs.ReceiverID, &rs.StampID, &rs.Replied,
			&rs.CreatedAt, &rs.UpdatedAt, &rs.StampMessage, &rs.StampImageURL, &rs.SenderName,
		)
		if err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

// ListBySender — отправленные пользователем стампы, новые первыми.
func (r *UserStampsRepository) ListBySender(ctx context.Context, senderID int64) ([]sharedModels.UserStamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userStampColumns+`
		   FROM user_stamp
		  WHERE sender_id=$1
		  ORDER BY created_at DESC, user_stamp_id DESC`,
		senderID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]sharedModels.UserStamp, 0)
	for rows.Next() {
		us, err := scanUserStamp(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}
