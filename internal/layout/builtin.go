package layout

// Built-in layout identifiers.
const (
	ANSI = "ansi"
	JIS  = "jis"

	DefaultID = ANSI
)

func k(main, shift, alt string) Key {
	return Key{Main: main, Shift: shift, Alt: alt, Width: 1}
}

func fn(alt string, width float64) Key {
	return Key{Alt: alt, Width: width}
}

// Kana printed on a US 104-key board.
var ansiRows = []Row{
	{
		k("ろ", "ー", "`"), k("ぬ", "", "1"), k("ふ", "", "2"), k("あ", "ぁ", "3"),
		k("う", "ぅ", "4"), k("え", "ぇ", "5"), k("お", "ぉ", "6"), k("や", "ゃ", "7"),
		k("ゆ", "ゅ", "8"), k("よ", "ょ", "9"), k("わ", "を", "0"), k("ほ", "", "-"),
		k("へ", "", "="), fn(BackspaceLabel, 2),
	},
	{
		fn("Tab", 1.5), k("た", "", "q"), k("て", "", "w"), k("い", "ぃ", "e"),
		k("す", "", "r"), k("か", "", "t"), k("ん", "", "y"), k("な", "", "u"),
		k("に", "", "i"), k("ら", "", "o"), k("せ", "", "p"), k("゛", "", "["),
		k("゜", "「", "]"), {Main: "む", Shift: "」", Alt: "\\", Width: 1.5},
	},
	{
		fn("Caps", 1.75), k("ち", "", "a"), k("と", "", "s"), k("し", "", "d"),
		k("は", "", "f"), k("き", "", "g"), k("く", "", "h"), k("ま", "", "j"),
		k("の", "", "k"), k("り", "", "l"), k("れ", "", ";"), k("け", "", "'"),
		fn("Enter", 2.25),
	},
	{
		fn(ShiftLabel, 2.25), k("つ", "っ", "z"), k("さ", "", "x"), k("そ", "", "c"),
		k("ひ", "", "v"), k("こ", "", "b"), k("み", "", "n"), k("も", "", "m"),
		k("ね", "、", ","), k("る", "。", "."), k("め", "・", "/"), fn(ShiftLabel, 2.75),
	},
	{
		fn("Ctrl", 1.25), fn("Super", 1.25), fn("Alt", 1.25), fn("Space", 6.25),
		fn("Alt", 1.25), fn("Super", 1.25), fn("Menu", 1.25), fn("Ctrl", 1.25),
	},
}

// JIS 109-key board with its native kana legends.
var jisRows = []Row{
	{
		fn("Hankaku", 1), k("ぬ", "", "1"), k("ふ", "", "2"), k("あ", "ぁ", "3"),
		k("う", "ぅ", "4"), k("え", "ぇ", "5"), k("お", "ぉ", "6"), k("や", "ゃ", "7"),
		k("ゆ", "ゅ", "8"), k("よ", "ょ", "9"), k("わ", "を", "0"), k("ほ", "", "-"),
		k("へ", "", "^"), k("ー", "", "¥"), fn(BackspaceLabel, 1),
	},
	{
		fn("Tab", 1.5), k("た", "", "q"), k("て", "", "w"), k("い", "ぃ", "e"),
		k("す", "", "r"), k("か", "", "t"), k("ん", "", "y"), k("な", "", "u"),
		k("に", "", "i"), k("ら", "", "o"), k("せ", "", "p"), k("゛", "", "@"),
		k("゜", "「", "["), fn("Enter", 1.5),
	},
	{
		fn("Caps", 1.75), k("ち", "", "a"), k("と", "", "s"), k("し", "", "d"),
		k("は", "", "f"), k("き", "", "g"), k("く", "", "h"), k("ま", "", "j"),
		k("の", "", "k"), k("り", "", "l"), k("れ", "", ";"), k("け", "", ":"),
		k("む", "」", "]"), fn("Enter", 1.25),
	},
	{
		fn(ShiftLabel, 2.25), k("つ", "っ", "z"), k("さ", "", "x"), k("そ", "", "c"),
		k("ひ", "", "v"), k("こ", "", "b"), k("み", "", "n"), k("も", "", "m"),
		k("ね", "、", ","), k("る", "。", "."), k("め", "・", "/"), k("ろ", "", "\\"),
		fn(ShiftLabel, 1.75),
	},
	{
		fn("Ctrl", 1.25), fn("Super", 1.25), fn("Alt", 1.25), fn("Muhenkan", 1.25),
		fn("Space", 3.75), fn("Henkan", 1.25), fn("Kana", 1.25), fn("Alt", 1.25),
		fn("Menu", 1.25), fn("Ctrl", 1.25),
	},
}

var builtinRows = map[string][]Row{
	ANSI: ansiRows,
	JIS:  jisRows,
}
