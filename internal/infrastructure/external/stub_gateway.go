package external

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/repositories"
)

// StubGateway is a deterministic, no-network provider for local demos and
// end-to-end tests. Replies are markdown-shaped so the renderer and report
// pipeline are exercised exactly as with a real provider.
type StubGateway struct{}

func NewStubGateway() repositories.LanguageModelGateway {
	return &StubGateway{}
}

func (g *StubGateway) Invoke(ctx context.Context, history []*entities.Turn, turn *entities.Turn) (string, error) {
	// Deterministic per input so repeated runs are stable.
	sum := sha256.Sum256([]byte(turn.Text()))
	short := hex.EncodeToString(sum[:4])

	prompt := strings.ToLower(turn.Text())
	switch {
	case strings.Contains(prompt, "treatment plan"), strings.Contains(prompt, "product recommendations"):
		return fmt.Sprintf(`**Treatment Plan** (stub %s)

1. Immediate Care:
- Use a **sulfate-free** shampoo twice weekly
- Apply leave-in conditioner to mid-lengths and ends

2. Professional Treatments:
- Deep conditioning treatment every 4-6 weeks

Lifestyle: maintain a protein-rich diet and limit heat styling.`, short), nil
	default:
		return fmt.Sprintf(`**Analysis Summary** (stub %s, %d image(s))

- **Texture**: wavy (confidence: high)
- **Density**: medium (confidence: medium)
- **Scalp**: no visible irritation
- **Ends**: minor split ends observed

Overall the hair appears healthy with mild dryness toward the ends.`, short, turn.ImageCount()), nil
	}
}

func (g *StubGateway) ProviderName() string {
	return "Stub"
}

func (g *StubGateway) Close() error {
	return nil
}
