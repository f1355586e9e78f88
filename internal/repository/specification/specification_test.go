package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, db *gorm.DB, specs ...Specification) (string, []interface{}) {
	for _, s := range specs {
		db = s.Apply(db)
	}
	var rows []map[string]interface{}
	stmt := db.Table("orders").Find(&rows).Statement
	require.NoError(t, stmt.Error)
	return stmt.SQL.String(), stmt.Vars
}

func TestStatusNotExcludesLifecycleState(t *testing.T) {
	sql, vars := buildSQL(t, newDryRunDB(t), StatusNot{Status: "cancelled"})
	assert.Contains(t, sql, "status <> ?")
	assert.Equal(t, []interface{}{"cancelled"}, vars)
}

func TestActiveOrderListingExcludesFinishedStates(t *testing.T) {
	sql, vars := buildSQL(t, newDryRunDB(t),
		OwnedBy{UserID: 7},
		StatusNot{Status: "cancelled"},
		StatusNot{Status: "delivered"},
		OrderBy{Field: "order_time", Desc: true},
	)
	assert.Contains(t, sql, "user_id = ?")
	assert.Contains(t, sql, "status <> ?")
	assert.Contains(t, sql, "order_time DESC")
	assert.Equal(t, []interface{}{uint(7), "cancelled", "delivered"}, vars)
}

func TestByConversationID(t *testing.T) {
	sql, vars := buildSQL(t, newDryRunDB(t), ByConversationID{ConversationID: "abc-123"})
	assert.Contains(t, sql, "conversation_id = ?")
	assert.Equal(t, []interface{}{"abc-123"}, vars)
}
