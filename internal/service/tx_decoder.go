// Package service wires the transaction decoder with its metrics, annotation and logging.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/rawtx"
	"go.uber.org/zap"
)

// ErrAnnotatorNotConfigured is returned by DecodeAnnotated on a service built without an annotator.
var ErrAnnotatorNotConfigured = errors.New("annotator not configured")

// TxDecoderService decodes raw transactions and records the outcome.
type TxDecoderService struct {
	metrics   DecoderMetrics
	annotator Annotator
	logger    *zap.Logger
	opts      []rawtx.Option
}

// NewTxDecoderService builds the decoder service. annotator may be nil when only
// plain records are needed.
func NewTxDecoderService(
	metrics DecoderMetrics,
	annotator Annotator,
	logger *zap.Logger,
	opts ...rawtx.Option,
) (*TxDecoderService, error) {
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &TxDecoderService{
		metrics:   metrics,
		annotator: annotator,
		logger:    logger,
		opts:      opts,
	}, nil
}

// Decode parses one hex-encoded transaction.
func (s *TxDecoderService) Decode(hexTx string) (tx model.Transaction, err error) {
	started := time.Now()
	size := len(hexTx) / 2
	defer func() {
		s.metrics.ObserveDecode(err, rawtx.ErrorKind(err), size, started)
	}()

	tx, err = rawtx.DecodeHex(hexTx, s.opts...)
	if err != nil {
		s.logger.Debug("decode failed",
			zap.String("reason", rawtx.ErrorKind(err)),
			zap.Int("size", size),
			zap.Error(err),
		)
		return model.Transaction{}, err
	}

	s.metrics.ObserveElements(len(tx.Inputs), len(tx.Outputs))
	s.logger.Debug("transaction decoded",
		zap.Stringer("txid", tx.TransactionID),
		zap.Int("size", size),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
	)
	return tx, nil
}

// DecodeAnnotated parses one hex-encoded transaction and builds its annotated view.
func (s *TxDecoderService) DecodeAnnotated(hexTx string) (model.AnnotatedTransaction, error) {
	if s.annotator == nil {
		return model.AnnotatedTransaction{}, ErrAnnotatorNotConfigured
	}
	tx, err := s.Decode(hexTx)
	if err != nil {
		return model.AnnotatedTransaction{}, err
	}
	view, err := s.annotator.Annotate(tx, len(hexTx)/2)
	if err != nil {
		return model.AnnotatedTransaction{}, fmt.Errorf("annotate tx %s: %w", tx.TransactionID, err)
	}
	return view, nil
}
