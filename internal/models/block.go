package models

import "encoding/json"

type BlockType string

const (
	BlockStats BlockType = "stats"
	BlockChart BlockType = "chart"
	BlockList  BlockType = "list"
)

// Block is a single dashboard display unit. The set of implementations is
// closed to this package.
type Block interface {
	Type() BlockType
	block()
}

type StatsBlock struct {
	Title string
	Value float64
}

type ChartBlock struct {
	Title string
}

type ListBlock struct {
	Title string
	Data  []Transaction
}

func (StatsBlock) Type() BlockType { return BlockStats }
func (ChartBlock) Type() BlockType { return BlockChart }
func (ListBlock) Type() BlockType  { return BlockList }

func (StatsBlock) block() {}
func (ChartBlock) block() {}
func (ListBlock) block()  {}

func (b StatsBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  BlockType `json:"type"`
		Title string    `json:"title"`
		Value float64   `json:"value"`
	}{b.Type(), b.Title, b.Value})
}

func (b ChartBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  BlockType `json:"type"`
		Title string    `json:"title"`
	}{b.Type(), b.Title})
}

func (b ListBlock) MarshalJSON() ([]byte, error) {
	data := b.Data
	if data == nil {
		data = []Transaction{}
	}
	return json.Marshal(struct {
		Type  BlockType     `json:"type"`
		Title string        `json:"title"`
		Data  []Transaction `json:"data"`
	}{b.Type(), b.Title, data})
}

// DashboardView is the composed dashboard for one request.
type DashboardView struct {
	Context string  `json:"context"`
	Blocks  []Block `json:"blocks"`
}
