package finreport

import "testing"

func deltaEqual(a, b DeltaRecord) bool {
	return a.Day == b.Day && a.Delta.Equal(b.Delta)
}

func TestFindExtremes(t *testing.T) {
	testCases := []struct {
		name         string
		deltas       []DeltaRecord
		wantIncrease DeltaRecord
		wantDecrease DeltaRecord
		wantTop      []DeltaRecord
	}{
		{
			name:         "empty series keeps both sentinels",
			deltas:       nil,
			wantIncrease: dd(0, 0),
			wantDecrease: dd(0, 0),
			wantTop:      nil,
		},
		{
			name:         "mixed series",
			deltas:       []DeltaRecord{dd(2, 50), dd(3, -60), dd(4, 0)},
			wantIncrease: dd(2, 50),
			wantDecrease: dd(3, -60),
			wantTop:      []DeltaRecord{dd(3, -60)},
		},
		{
			name:         "all negative keeps the increase sentinel",
			deltas:       []DeltaRecord{dd(2, -10), dd(3, -5), dd(4, -20)},
			wantIncrease: dd(0, 0),
			wantDecrease: dd(4, -20),
			wantTop:      []DeltaRecord{dd(4, -20), dd(2, -10), dd(3, -5)},
		},
		{
			name:         "all positive keeps the decrease sentinel",
			deltas:       []DeltaRecord{dd(2, 10), dd(3, 5)},
			wantIncrease: dd(2, 10),
			wantDecrease: dd(0, 0),
			wantTop:      nil,
		},
		{
			name:         "tie for the maximum keeps the first day",
			deltas:       []DeltaRecord{dd(2, 30), dd(3, 30)},
			wantIncrease: dd(2, 30),
			wantDecrease: dd(0, 0),
			wantTop:      nil,
		},
		{
			name: "more than three deficits are cut to the worst three",
			deltas: []DeltaRecord{
				dd(2, -10), dd(3, -40), dd(4, 5), dd(5, -30), dd(6, -20),
			},
			wantIncrease: dd(4, 5),
			wantDecrease: dd(3, -40),
			wantTop:      []DeltaRecord{dd(3, -40), dd(5, -30), dd(6, -20)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindExtremes(tc.deltas)
			if !deltaEqual(got.HighestIncrease, tc.wantIncrease) {
				t.Errorf("HighestIncrease = (%d, %s), want (%d, %s)",
					got.HighestIncrease.Day, got.HighestIncrease.Delta,
					tc.wantIncrease.Day, tc.wantIncrease.Delta)
			}
			if !deltaEqual(got.HighestDecrease, tc.wantDecrease) {
				t.Errorf("HighestDecrease = (%d, %s), want (%d, %s)",
					got.HighestDecrease.Day, got.HighestDecrease.Delta,
					tc.wantDecrease.Day, tc.wantDecrease.Delta)
			}
			if len(got.TopDeficits) != len(tc.wantTop) {
				t.Fatalf("len(TopDeficits) = %d, want %d", len(got.TopDeficits), len(tc.wantTop))
			}
			for i := range got.TopDeficits {
				if !deltaEqual(got.TopDeficits[i], tc.wantTop[i]) {
					t.Errorf("TopDeficits[%d] = (%d, %s), want (%d, %s)",
						i, got.TopDeficits[i].Day, got.TopDeficits[i].Delta,
						tc.wantTop[i].Day, tc.wantTop[i].Delta)
				}
			}
		})
	}
}

func TestFindExtremes_DeficitsKeepDayOrder(t *testing.T) {
	deltas := []DeltaRecord{dd(2, -10), dd(3, 5), dd(4, -40), dd(5, -1)}
	got := FindExtremes(deltas)

	wantDays := []int{2, 4, 5}
	if len(got.Deficits) != len(wantDays) {
		t.Fatalf("len(Deficits) = %d, want %d", len(got.Deficits), len(wantDays))
	}
	for i, d := range got.Deficits {
		if d.Day != wantDays[i] {
			t.Errorf("Deficits[%d].Day = %d, want %d", i, d.Day, wantDays[i])
		}
	}
}

func TestFindExtremes_StableRankingOnTies(t *testing.T) {
	// Equal deficit amounts keep their original day order in the ranking.
	deltas := []DeltaRecord{dd(2, -20), dd(3, -50), dd(4, -20), dd(5, -20)}
	got := FindExtremes(deltas)

	wantDays := []int{3, 2, 4}
	for i, d := range got.TopDeficits {
		if d.Day != wantDays[i] {
			t.Errorf("TopDeficits[%d].Day = %d, want %d", i, d.Day, wantDays[i])
		}
	}
}

func TestFindExtremes_SentinelShadowsDecrease(t *testing.T) {
	// A first delta that raises the increase is not also tested as a
	// decrease in the same step; the decrease keeps its sentinel.
	got := FindExtremes([]DeltaRecord{dd(2, 10)})
	if !deltaEqual(got.HighestDecrease, dd(0, 0)) {
		t.Errorf("HighestDecrease = (%d, %s), want the (0, 0.0) sentinel",
			got.HighestDecrease.Day, got.HighestDecrease.Delta)
	}
}

func TestConsistent(t *testing.T) {
	testCases := []struct {
		name   string
		deltas []DeltaRecord
		want   bool
	}{
		{name: "empty series is consistent", deltas: nil, want: true},
		{name: "all positive", deltas: []DeltaRecord{dd(2, 1), dd(3, 2)}, want: true},
		{name: "zero delta is still consistent", deltas: []DeltaRecord{dd(2, 0)}, want: true},
		{name: "one deficit breaks consistency", deltas: []DeltaRecord{dd(2, 50), dd(3, -60), dd(4, 0)}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Consistent(tc.deltas); got != tc.want {
				t.Errorf("Consistent() = %v, want %v", got, tc.want)
			}
		})
	}
}
