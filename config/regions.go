package config

import "mallmap/server/internal/models"

// DefaultRegionShapes is the built-in map table: provinces and metropolitan
// cities, followed by municipality entries that appear as regions in the
// catalog. Several municipality entries are placeholders that share
// coordinates with a neighbour (강진/영암, 예천/안동 area, 칠곡/청도).
var DefaultRegionShapes = []models.RegionShape{
	{Name: "서울특별시", ID: "seoul", Path: "M100 100 L120 100 L120 120 L100 120 Z", TextX: 110, TextY: 110},
	{Name: "부산광역시", ID: "busan", Path: "M500 800 L520 800 L520 820 L500 820 Z", TextX: 510, TextY: 810},
	{Name: "대구광역시", ID: "daegu", Path: "M400 600 L420 600 L420 620 L400 620 Z", TextX: 410, TextY: 610},
	{Name: "인천광역시", ID: "incheon", Path: "M80 80 L100 80 L100 100 L80 100 Z", TextX: 90, TextY: 90},
	{Name: "광주광역시", ID: "gwangju", Path: "M250 750 L270 750 L270 770 L250 770 Z", TextX: 260, TextY: 760},
	{Name: "대전광역시", ID: "daejeon", Path: "M280 480 L300 480 L300 500 L280 500 Z", TextX: 290, TextY: 490},
	{Name: "울산광역시", ID: "ulsan", Path: "M550 700 L570 700 L570 720 L550 720 Z", TextX: 560, TextY: 710},
	{Name: "세종특별자치시", ID: "sejong", Path: "M260 450 L280 450 L280 470 L260 470 Z", TextX: 270, TextY: 460},
	{Name: "경기도", ID: "gyeonggi", Path: "M120 100 L200 100 L200 200 L120 200 Z", TextX: 160, TextY: 150},
	{Name: "강원도", ID: "gangwon", Path: "M200 50 L350 50 L350 250 L200 250 Z", TextX: 275, TextY: 150},
	{Name: "충청북도", ID: "chungbuk", Path: "M250 300 L350 300 L350 400 L250 400 Z", TextX: 300, TextY: 350},
	{Name: "충청남도", ID: "chungnam", Path: "M180 450 L280 450 L280 550 L180 550 Z", TextX: 230, TextY: 500},
	{Name: "전라북도", ID: "jeonbuk", Path: "M150 600 L280 600 L280 700 L150 700 Z", TextX: 215, TextY: 650},
	{Name: "전라남도", ID: "jeonnam", Path: "M100 750 L280 750 L280 900 L100 900 Z", TextX: 190, TextY: 825},
	{Name: "경상북도", ID: "gyeongbuk", Path: "M350 300 L550 300 L550 600 L350 600 Z", TextX: 450, TextY: 450},
	{Name: "경상남도", ID: "gyeongnam", Path: "M300 650 L550 650 L550 850 L300 850 Z", TextX: 425, TextY: 750},
	{Name: "제주특별자치도", ID: "jeju", Path: "M200 950 L300 950 L300 1000 L200 1000 Z", TextX: 250, TextY: 975},
	{Name: "달성군", ID: "dalseong", Path: "M410 620 L430 620 L430 640 L410 640 Z", TextX: 420, TextY: 630},
	{Name: "부안", ID: "buan", Path: "M160 700 L180 700 L180 720 L160 720 Z", TextX: 170, TextY: 710},
	{Name: "정읍", ID: "jeongeup", Path: "M200 700 L220 700 L220 720 L200 720 Z", TextX: 210, TextY: 710},
	{Name: "김제", ID: "kimje", Path: "M180 680 L200 680 L200 700 L180 700 Z", TextX: 190, TextY: 690},
	{Name: "순창", ID: "sunchang", Path: "M200 740 L220 740 L220 760 L200 760 Z", TextX: 210, TextY: 750},
	{Name: "신안", ID: "sinan", Path: "M80 850 L100 850 L100 870 L80 870 Z", TextX: 90, TextY: 860},
	{Name: "장흥", ID: "jangheung", Path: "M250 850 L270 850 L270 870 L250 870 Z", TextX: 260, TextY: 860},
	{Name: "영암", ID: "yeongam", Path: "M180 880 L200 880 L200 900 L180 900 Z", TextX: 190, TextY: 890},
	{Name: "진도", ID: "jindo", Path: "M80 900 L100 900 L100 920 L80 920 Z", TextX: 90, TextY: 910},
	{Name: "완도", ID: "wando", Path: "M100 930 L120 930 L120 950 L100 950 Z", TextX: 110, TextY: 940},
	{Name: "함평", ID: "hampyeong", Path: "M120 820 L140 820 L140 840 L120 840 Z", TextX: 130, TextY: 830},
	{Name: "해남", ID: "haenam", Path: "M130 900 L150 900 L150 920 L130 920 Z", TextX: 140, TextY: 910},
	{Name: "담양", ID: "damyang", Path: "M200 800 L220 800 L220 820 L200 820 Z", TextX: 210, TextY: 810},
	{Name: "강진", ID: "gangjin", Path: "M180 880 L200 880 L200 900 L180 900 Z", TextX: 190, TextY: 890},
	{Name: "화순", ID: "hwasun", Path: "M220 820 L240 820 L240 840 L220 840 Z", TextX: 230, TextY: 830},
	{Name: "곡성", ID: "gokseong", Path: "M280 800 L300 800 L300 820 L280 820 Z", TextX: 290, TextY: 810},
	{Name: "상주", ID: "sangju", Path: "M450 450 L470 450 L470 470 L450 470 Z", TextX: 460, TextY: 460},
	{Name: "청도", ID: "cheongdo", Path: "M430 600 L450 600 L450 620 L430 620 Z", TextX: 440, TextY: 610},
	{Name: "영주", ID: "yeongju", Path: "M400 350 L420 350 L420 370 L400 370 Z", TextX: 410, TextY: 360},
	{Name: "안동", ID: "andong", Path: "M450 400 L470 400 L470 420 L450 420 Z", TextX: 460, TextY: 410},
	{Name: "청송", ID: "cheongsong", Path: "M480 420 L500 420 L500 440 L480 440 Z", TextX: 490, TextY: 430},
	{Name: "영양", ID: "yeongyang", Path: "M500 380 L520 380 L520 400 L500 400 Z", TextX: 510, TextY: 390},
	{Name: "울릉도", ID: "ulleungdo", Path: "M700 200 L720 200 L720 220 L700 220 Z", TextX: 710, TextY: 210},
	{Name: "봉화", ID: "bonghwa", Path: "M480 350 L500 350 L500 370 L480 370 Z", TextX: 490, TextY: 360},
	{Name: "고령", ID: "goryeong", Path: "M400 650 L420 650 L420 670 L400 670 Z", TextX: 410, TextY: 660},
	{Name: "김천", ID: "gimcheon", Path: "M350 550 L370 550 L370 570 L350 570 Z", TextX: 360, TextY: 560},
	{Name: "예천", ID: "yecheon", Path: "M400 400 L420 400 L420 420 L400 420 Z", TextX: 410, TextY: 410},
	{Name: "문경", ID: "mungyeong", Path: "M380 400 L400 400 L400 420 L380 420 Z", TextX: 390, TextY: 410},
	{Name: "칠곡", ID: "chilgok", Path: "M420 600 L440 600 L440 620 L420 620 Z", TextX: 430, TextY: 610},
	{Name: "의성", ID: "uiseong", Path: "M450 480 L470 480 L470 500 L450 500 Z", TextX: 460, TextY: 490},
	{Name: "울진", ID: "uljin", Path: "M550 380 L570 380 L570 400 L550 400 Z", TextX: 560, TextY: 390},
	{Name: "영덕", ID: "yeongdeok", Path: "M550 450 L570 450 L570 470 L550 470 Z", TextX: 560, TextY: 460},
	{Name: "경산", ID: "gyeongsan", Path: "M480 600 L500 600 L500 620 L480 620 Z", TextX: 490, TextY: 610},
	{Name: "경주", ID: "gyeongju", Path: "M520 550 L540 550 L540 570 L520 570 Z", TextX: 530, TextY: 560},
	{Name: "구미", ID: "gumi", Path: "M400 580 L420 580 L420 600 L400 600 Z", TextX: 410, TextY: 590},
	{Name: "영천", ID: "yeongcheon", Path: "M480 550 L500 550 L500 570 L480 570 Z", TextX: 490, TextY: 560},
	{Name: "포항", ID: "pohang", Path: "M580 500 L600 500 L600 520 L580 520 Z", TextX: 590, TextY: 510},
	{Name: "의령", ID: "uiryeong", Path: "M380 700 L400 700 L400 720 L380 720 Z", TextX: 390, TextY: 710},
	{Name: "남해", ID: "namhae", Path: "M300 850 L320 850 L320 870 L300 870 Z", TextX: 310, TextY: 860},
	{Name: "산청", ID: "sancheong", Path: "M350 750 L370 750 L370 770 L350 770 Z", TextX: 360, TextY: 760},
	{Name: "고성", ID: "goseong", Path: "M420 800 L440 800 L440 820 L420 820 Z", TextX: 430, TextY: 810},
	{Name: "함양", ID: "hamyang", Path: "M300 700 L320 700 L320 720 L300 720 Z", TextX: 310, TextY: 710},
	{Name: "진주", ID: "jinju", Path: "M350 780 L370 780 L370 800 L350 800 Z", TextX: 360, TextY: 790},
	{Name: "함안", ID: "haman", Path: "M400 750 L420 750 L420 770 L400 770 Z", TextX: 410, TextY: 760},
	{Name: "김해", ID: "gimhae", Path: "M450 750 L470 750 L470 770 L450 770 Z", TextX: 460, TextY: 760},
}
