package gateway

import "context"

// TransactionObject é o "crachá" opaco que carrega a transação:
// pgx.Tx no Postgres, *memory.Store no modo em memória.
type TransactionObject interface{}

// TransactionManager define quem sabe iniciar/comitar transações (UoW).
// Se fn retornar erro, nada do que foi escrito dentro dela fica visível.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionKeyType evita colisão de chaves no contexto
type TransactionKeyType string

// TransactionKey é onde Run injeta o TransactionObject no ctx.
const TransactionKey TransactionKeyType = "transaction"
