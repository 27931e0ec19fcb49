package display

import "testing"

func TestAmountStripsTrailingZerosAndInsertsThousands(t *testing.T) {
	got := Amount(1_000_000_0000000, NativeDecimals)
	if got != "1,000,000" {
		t.Fatalf("expected 1,000,000, got %q", got)
	}
}

func TestAmountPreservesSignificantFraction(t *testing.T) {
	got := Amount(15000000, NativeDecimals)
	if got != "1.5" {
		t.Fatalf("expected 1.5, got %q", got)
	}
}

func TestAmountNegative(t *testing.T) {
	got := Amount(-500000000, NativeDecimals)
	if got != "-50" {
		t.Fatalf("expected -50, got %q", got)
	}
}

func TestInt128RoundTripsSignExtension(t *testing.T) {
	got := Int128(-1, ^uint64(0), false)
	if got != "-1" {
		t.Fatalf("expected -1, got %q", got)
	}
}

func TestUInt128AssemblesLimbs(t *testing.T) {
	got := UInt128(1, 0, false)
	want := "18446744073709551616" // 2^64
	if got != want {
		t.Fatalf("expected %s, got %q", want, got)
	}
}

func TestTimeFormatsUTC(t *testing.T) {
	got, err := Time(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1970-01-01 00:00:00" {
		t.Fatalf("expected epoch, got %q", got)
	}
}

func TestTimeRejectsOutOfRange(t *testing.T) {
	if _, err := Time(maxUnixSeconds + 1); err != ErrDoesNotFit {
		t.Fatalf("expected ErrDoesNotFit, got %v", err)
	}
}

func TestIsPrintableBinary(t *testing.T) {
	if !IsPrintableBinary([]byte("Hello")) {
		t.Fatalf("expected Hello to be printable")
	}
	if IsPrintableBinary([]byte{0x01, 0x02}) {
		t.Fatalf("expected control bytes to be non-printable")
	}
}

func TestMemoTextValueFallsBackToBase64(t *testing.T) {
	got := MemoTextValue([]byte{0x01, 0x02})
	if got != "Base64: AQI=" {
		t.Fatalf("expected Base64: AQI=, got %q", got)
	}
}

func TestFlagsDecomposesAccountMask(t *testing.T) {
	got := Flags(AccountFlags, 1|8)
	if got != "AUTH_REQUIRED, AUTH_CLAWBACK_ENABLED" {
		t.Fatalf("unexpected flags: %q", got)
	}
}

func TestFlagsAllowTrustZeroIsUnauthorized(t *testing.T) {
	if got := Flags(AllowTrustFlags, 0); got != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %q", got)
	}
}

func TestTruncateInsertsEllipsisInMiddle(t *testing.T) {
	got := Truncate("GABCDEFGHIJKLMNOPQRSTUVWXYZ", 10)
	if len(got) != 10 {
		t.Fatalf("expected length 10, got %d (%q)", len(got), got)
	}
}
