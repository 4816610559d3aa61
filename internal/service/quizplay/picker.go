// Package quizplay выбирает следующий вопрос игры «викторина».
//
// Состояние игры хранит клиент: на каждом запросе он присылает ID уже заданных
// вопросов, сервер ничего не запоминает между запросами.
package quizplay

import (
	"math/rand/v2"
	"sync"

	"github.com/trivialab/trivia-api/internal/domain/entity"
)

// Picker равновероятно выбирает ещё не заданный вопрос из кандидатов
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand // nil — используется глобальный источник math/rand/v2
}

// NewPicker создаёт селектор на глобальном потокобезопасном источнике
func NewPicker() *Picker {
	return &Picker{}
}

// NewSeededPicker создаёт селектор с детерминированным PCG-источником (для тестов и воспроизведения)
func NewSeededPicker(seed1, seed2 uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// PickUnseen возвращает случайный вопрос, ID которого нет в served.
// ok=false означает, что незаданных вопросов не осталось (в том числе при пустом
// списке кандидатов). ID из served, которых нет среди кандидатов, игнорируются.
func (p *Picker) PickUnseen(candidates []entity.Question, served []uint) (*entity.Question, bool) {
	unseen := Unseen(candidates, served)
	if len(unseen) == 0 {
		return nil, false
	}

	picked := unseen[p.intn(len(unseen))]
	return &picked, true
}

// Unseen возвращает кандидатов, чьих ID нет в served, в исходном порядке
func Unseen(candidates []entity.Question, served []uint) []entity.Question {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(served))
	for _, id := range served {
		seen[id] = struct{}{}
	}

	unseen := make([]entity.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	return unseen
}

func (p *Picker) intn(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
