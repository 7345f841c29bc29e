// fixtures_test.go — category registrations shared across the test suite.
//
// Three fixture families:
//   - spi/gyro/calibration: a three-level sensor stack with formatters,
//     used by scenario and formatting tests.
//   - delta..omega: a linear five-category ladder with 16 variants each
//     and no formatters, used by code-sweep and overflow tests.
//   - loopA/loopB/loopC: a cyclic link graph (including a self link),
//     completed in init because var initialization cannot close a cycle.
package xgxerrchain

import "fmt"

// -----------------------------------------------------------------------------
// Sensor stack: SpiError <- GyroAccError <- CalibrationError
// -----------------------------------------------------------------------------

// Contextual state captured by the gyro formatter at registration.
var lastGyroReadout = 200

var (
	spiCategory = NewCategory("SpiError", 2, func(c Code) string {
		switch SpiError(c) {
		case SpiBusError:
			return "bus error"
		case SpiTimeout:
			return "timeout"
		}
		return ""
	})

	gyroCategory = NewCategory("GyroAccError", 3, func(c Code) string {
		switch GyroAccError(c) {
		case GyroInitFailed:
			return "init failed"
		case GyroReadoutFailed:
			return fmt.Sprintf("readout failed (readout=%d)", lastGyroReadout)
		case GyroInvalidValue:
			return "invalid value"
		}
		return ""
	}, spiCategory)

	calibCategory = NewCategory("CalibrationError", 2, func(c Code) string {
		switch CalibrationError(c) {
		case CalibInner:
			return "calibration failed"
		case CalibTimeout:
			return "calibration timed out"
		}
		return ""
	}, gyroCategory, spiCategory)
)

type SpiError uint8

const (
	SpiBusError SpiError = iota
	SpiTimeout
)

func (e SpiError) Code() Code           { return Code(e) }
func (e SpiError) Category() *Category  { return spiCategory }
func (e SpiError) Error() string        { return New(e).Error() }

type GyroAccError uint8

const (
	GyroInitFailed GyroAccError = iota
	GyroReadoutFailed
	GyroInvalidValue
)

func (e GyroAccError) Code() Code          { return Code(e) }
func (e GyroAccError) Category() *Category { return gyroCategory }
func (e GyroAccError) Error() string       { return New(e).Error() }

type CalibrationError uint8

const (
	CalibInner CalibrationError = iota
	CalibTimeout
)

func (e CalibrationError) Code() Code          { return Code(e) }
func (e CalibrationError) Category() *Category { return calibCategory }
func (e CalibrationError) Error() string       { return New(e).Error() }

// -----------------------------------------------------------------------------
// Linear ladder: Delta <- Gamma <- Beta <- Alpha <- Omega
// -----------------------------------------------------------------------------

var (
	deltaCategory = NewCategory("DeltaError", 16, nil)
	gammaCategory = NewCategory("GammaError", 16, nil, deltaCategory)
	betaCategory  = NewCategory("BetaError", 16, nil, gammaCategory)
	alphaCategory = NewCategory("AlphaError", 16, nil, betaCategory)
	omegaCategory = NewCategory("OmegaError", 16, nil, alphaCategory)
)

type DeltaError uint8

func (e DeltaError) Code() Code          { return Code(e) }
func (e DeltaError) Category() *Category { return deltaCategory }

type GammaError uint8

func (e GammaError) Code() Code          { return Code(e) }
func (e GammaError) Category() *Category { return gammaCategory }

type BetaError uint8

func (e BetaError) Code() Code          { return Code(e) }
func (e BetaError) Category() *Category { return betaCategory }

type AlphaError uint8

func (e AlphaError) Code() Code          { return Code(e) }
func (e AlphaError) Category() *Category { return alphaCategory }

type OmegaError uint8

func (e OmegaError) Code() Code          { return Code(e) }
func (e OmegaError) Category() *Category { return omegaCategory }

// -----------------------------------------------------------------------------
// Cyclic trio: LoopC links itself, LoopA and LoopB; LoopA and LoopB close
// the cycle back to LoopC resp. LoopA.
// -----------------------------------------------------------------------------

var (
	loopACategory = NewCategory("LoopAError", 2, nil)
	loopBCategory = NewCategory("LoopBError", 2, nil, loopACategory)
	loopCCategory = NewCategory("LoopCError", 5, nil)
)

func init() {
	loopACategory.Link(loopCCategory)
	loopCCategory.Link(loopCCategory, loopACategory, loopBCategory)
}

type LoopAError uint8

const (
	LoopAErr0 LoopAError = iota
	LoopAErr1
)

func (e LoopAError) Code() Code          { return Code(e) }
func (e LoopAError) Category() *Category { return loopACategory }

type LoopBError uint8

const (
	LoopBErr0 LoopBError = iota
	LoopBErr1
)

func (e LoopBError) Code() Code          { return Code(e) }
func (e LoopBError) Category() *Category { return loopBCategory }

// LoopCError's codes deliberately start above zero so tests catch any
// confusion between a code's value and its slot position.
type LoopCError uint8

const (
	LoopCErr0 LoopCError = 3
	LoopCErr1 LoopCError = 4
)

func (e LoopCError) Code() Code          { return Code(e) }
func (e LoopCError) Category() *Category { return loopCCategory }
