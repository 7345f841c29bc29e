package xgxerrchain

import "testing"

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(SpiBusError)
	}
}

func BenchmarkChain(b *testing.B) {
	base := New(SpiBusError)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Chain(base, GyroInitFailed)
	}
}

func BenchmarkCodeOf(b *testing.B) {
	e := Chain(ChainValue(SpiBusError, GyroInitFailed), CalibInner)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CodeOf[SpiError](e)
	}
}

func BenchmarkErase(b *testing.B) {
	e := ChainValue(SpiBusError, GyroInitFailed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Erase(e)
	}
}

func BenchmarkDowncast(b *testing.B) {
	d := Erase(Chain(ChainValue(SpiBusError, GyroInitFailed), CalibInner))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Downcast[SpiError](d)
	}
}

func BenchmarkFormatVerbose(b *testing.B) {
	e := Chain(ChainValue(SpiBusError, GyroInitFailed), CalibInner)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = renderChain(categoryOf[CalibrationError](), e.w, sepVerbose)
	}
}
