package service

import "saleslens/internal/domain/entity"

// ImportObserver receives the outcome of every import run
type ImportObserver interface {
	ObserveImport(summary *entity.ImportSummary, failed bool)
}
