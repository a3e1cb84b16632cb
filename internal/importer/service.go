package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

// Service runs parsed uploads through the engine so resolution, recompute
// and persistence rules apply to every imported transaction.
type Service struct {
	parser *Parser
	engine *ledger.Engine
}

func NewService(engine *ledger.Engine) *Service {
	return &Service{
		parser: NewParser(),
		engine: engine,
	}
}

// Import parses the upload and records its transactions against the given
// cashbook. The first failing row stops the import; rows before it have
// already been applied.
func (s *Service) Import(ctx context.Context, cashbookID uuid.UUID, r io.Reader) (int, error) {
	inputs, err := s.parser.Parse(r)
	if err != nil {
		return 0, err
	}

	for i, in := range inputs {
		if _, err := s.engine.AddTransaction(ctx, cashbookID, in); err != nil {
			return i, fmt.Errorf("importing transaction %d: %w", i+1, err)
		}
	}

	return len(inputs), nil
}
