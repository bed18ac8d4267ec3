package contactbook_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/contactkit/pkg/contactbook"
)

func benchmarkRecord(b *testing.B, phones int) *contactbook.Record {
	b.Helper()
	record := contactbook.NewRecord("Benchmark")
	for i := 0; i < phones; i++ {
		if err := record.AddPhone(fmt.Sprintf("%010d", i)); err != nil {
			b.Fatal(err)
		}
	}
	return record
}

func BenchmarkNewPhone(b *testing.B) {
	b.Run("valid", func(b *testing.B) {
		for b.Loop() {
			_, _ = contactbook.NewPhone("1234567890")
		}
	})

	b.Run("invalid", func(b *testing.B) {
		for b.Loop() {
			_, _ = contactbook.NewPhone("123-456-78")
		}
	})
}

func BenchmarkRecordFindPhone(b *testing.B) {
	for _, size := range []int{1, 10, 100} {
		record := benchmarkRecord(b, size)
		last := fmt.Sprintf("%010d", size-1)

		b.Run(fmt.Sprintf("phones_%d", size), func(b *testing.B) {
			for b.Loop() {
				_, _ = record.FindPhone(last)
			}
		})
	}
}

func BenchmarkAddressBookFind(b *testing.B) {
	book := contactbook.New()
	for i := 0; i < 1000; i++ {
		book.AddRecord(contactbook.NewRecord(fmt.Sprintf("contact-%d", i)))
	}

	for b.Loop() {
		_, _ = book.Find("contact-999")
	}
}
