package service

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	DecoderMetrics interface {
		ObserveDecode(err error, reason string, size int, started time.Time)
		ObserveElements(inputs, outputs int)
	}
	Annotator interface {
		Annotate(tx model.Transaction, rawSize int) (model.AnnotatedTransaction, error)
	}
)
