package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// LoanDauEmbedding stores a semantic vector for one landform entry,
// either a sát khí or a cát tường record.
type LoanDauEmbedding struct {
	ID uint `gorm:"primaryKey" json:"id"`
	EntryType      string          `gorm:"column:entry_type;index" json:"entry_type"` // "sat_khi" | "the_dat"
	EntryName      string          `gorm:"column:entry_name" json:"entry_name"`
	Content        string          `gorm:"column:content;type:text" json:"content"`
	EmbeddingValue pgvector.Vector `gorm:"column:embedding_value;type:vector(768)" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (LoanDauEmbedding) TableName() string {
	return "loan_dau_embeddings"
}

// VatPhamEmbedding stores a semantic vector for one feng-shui item.
type VatPhamEmbedding struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	EntryName      string          `gorm:"column:entry_name" json:"entry_name"`
	Content        string          `gorm:"column:content;type:text" json:"content"`
	EmbeddingValue pgvector.Vector `gorm:"column:embedding_value;type:vector(768)" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (VatPhamEmbedding) TableName() string {
	return "vat_pham_embeddings"
}
