package finreport

import (
	"reflect"
	"testing"
)

func TestDifferences(t *testing.T) {
	testCases := []struct {
		name    string
		records []DailyRecord
		want    []DeltaRecord
	}{
		{
			name:    "empty input",
			records: nil,
			want:    nil,
		},
		{
			name:    "single record has no delta",
			records: []DailyRecord{day(1, 100)},
			want:    nil,
		},
		{
			name:    "mixed surplus and deficit",
			records: []DailyRecord{day(1, 100), day(2, 150), day(3, 90), day(4, 90)},
			want:    []DeltaRecord{dd(2, 50), dd(3, -60), dd(4, 0)},
		},
		{
			name:    "fractional values stay exact",
			records: []DailyRecord{day(1, 10.10), day(2, 10.35)},
			want:    []DeltaRecord{dd(2, 0.25)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Differences(tc.records)
			if len(got) != len(tc.want) {
				t.Fatalf("Differences() returned %d deltas, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].Day != tc.want[i].Day || !got[i].Delta.Equal(tc.want[i].Delta) {
					t.Errorf("delta[%d] = (%d, %s), want (%d, %s)",
						i, got[i].Day, got[i].Delta, tc.want[i].Day, tc.want[i].Delta)
				}
			}
		})
	}
}

func TestDifferences_Length(t *testing.T) {
	// An input of length N always yields N-1 deltas (0 when N <= 1).
	records := []DailyRecord{}
	for n := 0; n < 10; n++ {
		got := len(Differences(records))
		want := n - 1
		if want < 0 {
			want = 0
		}
		if got != want {
			t.Errorf("len(Differences) = %d for %d records, want %d", got, n, want)
		}
		records = append(records, day(n+1, float64(100+7*n)))
	}
}

func TestDifferences_RoundTrip(t *testing.T) {
	// delta[i] + value[i-1] == value[i] for every produced entry.
	records := []DailyRecord{day(1, 100), day(2, 150.5), day(3, 90.25), day(4, 90.25), day(5, 0)}
	deltas := Differences(records)
	for i, d := range deltas {
		if got := d.Delta.Add(records[i].Value); !got.Equal(records[i+1].Value) {
			t.Errorf("delta[%d] + value[%d] = %s, want %s", i, i, got, records[i+1].Value)
		}
	}
}

func TestDifferences_KeysByLaterDay(t *testing.T) {
	deltas := Differences([]DailyRecord{day(7, 1), day(9, 2), day(12, 1)})
	wantDays := []int{9, 12}
	var gotDays []int
	for _, d := range deltas {
		gotDays = append(gotDays, d.Day)
	}
	if !reflect.DeepEqual(gotDays, wantDays) {
		t.Errorf("delta days = %v, want %v", gotDays, wantDays)
	}
}
