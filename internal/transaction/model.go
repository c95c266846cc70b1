package transaction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one income or expense record. Type is derived from the
// sign of Amount exactly once at creation and stored as a regular
// field; it is never recomputed on read.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Type        string             `bson:"type" json:"type"`
}

// Report is the monthly income/expense summary.
type Report struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
