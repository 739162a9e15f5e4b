package repository

import (
	"context"
	"errors"
)

type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	mustPing(conn, "txManager")
	return &TxManager{
		conn: conn,
	}
}

type txPlanWriter struct {
	*CatalogRepository
	*LogsRepository
}

func (tm *TxManager) RunInTx(ctx context.Context, fn func(w PlanWriter) error) error {
	tx, err := tm.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	w := &txPlanWriter{
		CatalogRepository: &CatalogRepository{conn: tx},
		LogsRepository:    &LogsRepository{conn: tx},
	}
	if err = fn(w); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
