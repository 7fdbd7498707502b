package ustr

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("The quick brown fox jumps over the lazy dög. 世界 ", 200)

func BenchmarkNew(b *testing.B) {
	b.Run("inline", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New("short")
		}
	})
	b.Run("shared", func(b *testing.B) {
		b.SetBytes(int64(len(benchText)))
		for i := 0; i < b.N; i++ {
			_ = New(benchText)
		}
	})
}

func BenchmarkClone(b *testing.B) {
	s := New(benchText)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Release()
	}
}

func BenchmarkLen(b *testing.B) {
	b.Run("cached", func(b *testing.B) {
		s := New(benchText)
		s.Len()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Len()
		}
	})
	b.Run("cold", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = New(benchText).Len()
		}
	})
}

func BenchmarkAppend(b *testing.B) {
	b.Run("grown", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s String
			s.Grow(1000)
			for j := 0; j < 100; j++ {
				s.AppendString("0123456789")
			}
		}
	})
	b.Run("exact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s String
			for j := 0; j < 100; j++ {
				s.AppendString("0123456789")
			}
		}
	})
}

func BenchmarkFindFirst(b *testing.B) {
	s := New(benchText + "needle")
	needle := New("needle")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.FindFirst(needle, 0)
	}
}

func BenchmarkSplit(b *testing.B) {
	s := New(benchText)
	sep := New(" ")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Split(sep, true)
	}
}

func BenchmarkToUpper(b *testing.B) {
	s := New(benchText)
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ToUpper()
	}
}

func BenchmarkReplace(b *testing.B) {
	s := New(benchText)
	old, repl := New("fox"), New("cat")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Replace(old, repl)
	}
}
