package contactbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/contactbook"
)

func TestAddressBookAddRecord(t *testing.T) {
	t.Parallel()

	t.Run("keyed by contact name", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		book.AddRecord(contactbook.NewRecord("John"))

		record, ok := book.Find("John")
		require.True(t, ok)
		assert.Equal(t, "John", record.Name())
	})

	t.Run("overwrite under the same name", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()

		first := contactbook.NewRecord("John")
		require.NoError(t, first.AddPhone("1234567890"))
		book.AddRecord(first)

		second := contactbook.NewRecord("John")
		require.NoError(t, second.AddPhone("5555555555"))
		book.AddRecord(second)

		assert.Equal(t, 1, book.Len())
		record, ok := book.Find("John")
		require.True(t, ok)
		_, hasOld := record.FindPhone("1234567890")
		assert.False(t, hasOld)
		_, hasNew := record.FindPhone("5555555555")
		assert.True(t, hasNew)
	})

	t.Run("nil record ignored", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		book.AddRecord(nil)
		assert.Zero(t, book.Len())
	})
}

func TestAddressBookFind(t *testing.T) {
	t.Parallel()

	t.Run("absent name", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		record, ok := book.Find("Jane")
		assert.False(t, ok)
		assert.Nil(t, record)
	})

	t.Run("exact key match only", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		book.AddRecord(contactbook.NewRecord("John"))

		_, ok := book.Find("john")
		assert.False(t, ok)
	})
}

func TestAddressBookDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the record", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		jane := contactbook.NewRecord("Jane")
		require.NoError(t, jane.AddPhone("9876543210"))
		book.AddRecord(jane)

		book.Delete("Jane")

		_, ok := book.Find("Jane")
		assert.False(t, ok)
		assert.Zero(t, book.Len())
	})

	t.Run("absent name is a no-op", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		book.AddRecord(contactbook.NewRecord("John"))

		book.Delete("Jane")

		assert.Equal(t, 1, book.Len())
	})
}

func TestAddressBookNames(t *testing.T) {
	t.Parallel()

	t.Run("sorted output", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		book.AddRecord(contactbook.NewRecord("John"))
		book.AddRecord(contactbook.NewRecord("Alice"))
		book.AddRecord(contactbook.NewRecord("Jane"))

		assert.Equal(t, []string{"Alice", "Jane", "John"}, book.Names())
	})

	t.Run("empty book", func(t *testing.T) {
		t.Parallel()
		book := contactbook.New()
		assert.Empty(t, book.Names())
	})
}
