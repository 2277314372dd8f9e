package algofwt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-fwt/internal/reference"
)

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, n := range []uint{1, 2, 4, 8, 16, 1024, 1 << 31} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}

	for _, n := range []uint{0, 3, 5, 7, 12, ^uint(0)} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestSequencyImpulses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    int
		want []float64
	}{
		{0, []float64{1, 1, 1, 1, 1, 1, 1, 1}},
		{1, []float64{1, 1, 1, 1, -1, -1, -1, -1}},
		{2, []float64{1, 1, -1, -1, -1, -1, 1, 1}},
		{3, []float64{1, 1, -1, -1, 1, 1, -1, -1}},
		{4, []float64{1, -1, -1, 1, 1, -1, -1, 1}},
		{5, []float64{1, -1, -1, 1, -1, 1, 1, -1}},
		{6, []float64{1, -1, 1, -1, -1, 1, -1, 1}},
		{7, []float64{1, -1, 1, -1, 1, -1, 1, -1}},
	}

	for _, tt := range tests {
		got, err := Sequency(impulse[float64](8, tt.p))
		if err != nil {
			t.Fatalf("Sequency(impulse %d): %v", tt.p, err)
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Sequency(impulse %d) (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestHadamardImpulses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    int
		want []float64
	}{
		{0, []float64{1, 1, 1, 1, 1, 1, 1, 1}},
		{1, []float64{1, -1, 1, -1, 1, -1, 1, -1}},
		{2, []float64{1, 1, -1, -1, 1, 1, -1, -1}},
		{3, []float64{1, -1, -1, 1, 1, -1, -1, 1}},
		{4, []float64{1, 1, 1, 1, -1, -1, -1, -1}},
		{5, []float64{1, -1, 1, -1, -1, 1, -1, 1}},
		{6, []float64{1, 1, -1, -1, -1, -1, 1, 1}},
		{7, []float64{1, -1, -1, 1, -1, 1, 1, -1}},
	}

	for _, tt := range tests {
		got, err := Hadamard(impulse[float64](8, tt.p))
		if err != nil {
			t.Fatalf("Hadamard(impulse %d): %v", tt.p, err)
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Hadamard(impulse %d) (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestLength16Integers(t *testing.T) {
	t.Parallel()

	seq, err := Sequency(impulse[int](16, 1))
	if err != nil {
		t.Fatal(err)
	}

	wantSeq := []int{1, 1, 1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, -1}
	if diff := cmp.Diff(wantSeq, seq); diff != "" {
		t.Errorf("Sequency (-want +got):\n%s", diff)
	}

	had, err := Hadamard(impulse[int](16, 15))
	if err != nil {
		t.Fatal(err)
	}

	wantHad := []int{1, -1, -1, 1, -1, 1, 1, -1, -1, 1, 1, -1, 1, -1, -1, 1}
	if diff := cmp.Diff(wantHad, had); diff != "" {
		t.Errorf("Hadamard (-want +got):\n%s", diff)
	}
}

func TestTransformsRejectInvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 5, 6, 7, 12, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			v := make([]float64, n)

			if out, err := Sequency(v); !errors.Is(err, ErrInvalidLength) || out != nil {
				t.Errorf("Sequency: out=%v err=%v, want nil, ErrInvalidLength", out, err)
			}

			if out, err := Hadamard(v); !errors.Is(err, ErrInvalidLength) || out != nil {
				t.Errorf("Hadamard: out=%v err=%v, want nil, ErrInvalidLength", out, err)
			}

			if err := SequencyInPlace(v); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("SequencyInPlace: err=%v, want ErrInvalidLength", err)
			}

			if err := HadamardInPlace(v); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("HadamardInPlace: err=%v, want ErrInvalidLength", err)
			}
		})
	}

	if _, err := Sequency([]int(nil)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Sequency(nil): err=%v, want ErrInvalidLength", err)
	}
}

func TestLengthOneIsIdentity(t *testing.T) {
	t.Parallel()

	for _, transform := range []func([]int64) ([]int64, error){Sequency[int64], Hadamard[int64]} {
		got, err := transform([]int64{42})
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]int64{42}, got); diff != "" {
			t.Errorf("length-1 transform (-want +got):\n%s", diff)
		}
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), in...)

	if _, err := Sequency(in); err != nil {
		t.Fatal(err)
	}

	if _, err := Hadamard(in); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(orig, in); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestInPlaceMatchesCopy(t *testing.T) {
	t.Parallel()

	src := randomInts(64, 3)

	want, err := Sequency(src)
	if err != nil {
		t.Fatal(err)
	}

	got := append([]int(nil), src...)
	if err := SequencyInPlace(got); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SequencyInPlace (-want +got):\n%s", diff)
	}

	want, _ = Hadamard(src)
	got = append(got[:0], src...)

	if err := HadamardInPlace(got); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HadamardInPlace (-want +got):\n%s", diff)
	}
}

func TestTransformsMatchReference(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 256} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			src := randomFloat64s(n, int64(n)+7)

			seq, err := Sequency(src)
			if err != nil {
				t.Fatal(err)
			}

			assertApproxFloat64s(t, seq, reference.Sequency(src), 1e-9, "sequency n=%d", n)

			had, err := Hadamard(src)
			if err != nil {
				t.Fatal(err)
			}

			assertApproxFloat64s(t, had, reference.Hadamard(src), 1e-9, "hadamard n=%d", n)
		})
	}
}

// Applying a transform twice and scaling by the length recovers the input.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	transforms := map[string]func([]int) ([]int, error){
		"sequency": Sequency[int],
		"hadamard": Hadamard[int],
	}

	for name, transform := range transforms {
		for _, n := range []int{1, 2, 4, 8, 32, 512} {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				t.Parallel()

				src := randomInts(n, int64(n))

				once, err := transform(src)
				if err != nil {
					t.Fatal(err)
				}

				twice, err := transform(once)
				if err != nil {
					t.Fatal(err)
				}

				got, err := Scale(twice)
				if err != nil {
					t.Fatal(err)
				}

				want := make([]float64, n)
				for i, x := range src {
					want[i] = float64(x)
				}

				// Exact: integer arithmetic and division by a power of two.
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("round trip (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestRoundTripFloat32(t *testing.T) {
	t.Parallel()

	src := []float32{0.5, -1.25, 3, 8, 0, 2.5, -7, 1}

	once, err := Hadamard(src)
	if err != nil {
		t.Fatal(err)
	}

	twice, err := Hadamard(once)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Scale(twice)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(src))
	for i, x := range src {
		want[i] = float64(x)
	}

	assertApproxFloat64s(t, got, want, 1e-5, "float32 round trip")
}

func TestScale(t *testing.T) {
	t.Parallel()

	got, err := Scale([]int{3, 6, 9})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]float64{1, 2, 3}, got); diff != "" {
		t.Errorf("Scale ints (-want +got):\n%s", diff)
	}

	got, err = Scale([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]float64{0.25, 0.5, 0.75, 1}, got); diff != "" {
		t.Errorf("Scale floats (-want +got):\n%s", diff)
	}

	got, err = Scale([]uint8{255})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]float64{255}, got); diff != "" {
		t.Errorf("Scale uint8 (-want +got):\n%s", diff)
	}
}

func TestScaleEmpty(t *testing.T) {
	t.Parallel()

	out, err := Scale([]float64{})
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Scale(empty) err = %v, want ErrInvalidLength", err)
	}

	if out != nil {
		t.Errorf("Scale(empty) = %v, want nil", out)
	}
}

func TestHadamardScaleRoundTripExample(t *testing.T) {
	t.Parallel()

	input := []float64{1, 2, 3, 4}

	outcome, err := Hadamard(input)
	if err != nil {
		t.Fatal(err)
	}

	unscaled, err := Hadamard(outcome)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Scale(unscaled)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func BenchmarkSequency(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomFloat64s(n, 1)

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Sequency(src)
			}
		})
	}
}

func BenchmarkHadamard(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomFloat64s(n, 1)

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Hadamard(src)
			}
		})
	}
}
