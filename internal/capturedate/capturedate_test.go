package capturedate

import "testing"

func TestFromVideoName(t *testing.T) {
	cases := []struct {
		name string
		want Date
		ok   bool
	}{
		{"VID_20230401_001.mp4", Date{"2023", "04", "01"}, true},
		{"VID_19991231_12345.MOV", Date{"1999", "12", "31"}, true},
		// Shape-only extraction: month 13 is accepted as-is.
		{"VID_20231301_001.mp4", Date{"2023", "13", "01"}, true},
		{"VID_2023041_001.mp4", Date{}, false},  // 7-digit date
		{"VID_20230401.mp4", Date{}, false},     // missing suffix
		{"VID_20230401_abc.mp4", Date{}, false}, // non-numeric suffix
		{"MOV_20230401_001.mp4", Date{}, false}, // wrong prefix
		{"vid_20230401_001.mp4", Date{}, false}, // prefix is case-sensitive
		{"VID_20230401_001", Date{}, false},     // no extension
		{"holiday.mp4", Date{}, false},
	}
	for _, tc := range cases {
		got, ok := FromVideoName(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("FromVideoName(%q) = %+v, %v; want %+v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFromExifTag(t *testing.T) {
	cases := []struct {
		tag  string
		want Date
		ok   bool
	}{
		{"2022:12:25 10:00:00", Date{"2022", "12", "25"}, true},
		{"2022:13:25 10:00:00", Date{"2022", "13", "25"}, true}, // trusted source
		{"2022-12-25 10:00:00", Date{}, false},
		{"2022:12:25", Date{}, false},
		{"2022:12:25 10:00:00 ", Date{}, false}, // trailing junk rejected
		{"", Date{}, false},
	}
	for _, tc := range cases {
		got, ok := FromExifTag(tc.tag)
		if ok != tc.ok || got != tc.want {
			t.Errorf("FromExifTag(%q) = %+v, %v; want %+v, %v", tc.tag, got, ok, tc.want, tc.ok)
		}
	}
}
