package constants

// NumericReplacements maps the C1 control code points that the WHATWG HTML5
// parsing algorithm remaps to their Windows-1252 equivalents when they
// appear as the target of a numeric character reference.
var NumericReplacements = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}

// LegacyEntities lists the named character references that the HTML5
// parsing algorithm recognizes without a trailing semicolon, for
// compatibility with documents written against HTML 4.
var LegacyEntities = map[string]bool{
	"AElig": true, "AMP": true, "Aacute": true, "Acirc": true, "Agrave": true,
	"Aring": true, "Atilde": true, "Auml": true, "COPY": true, "Ccedil": true,
	"ETH": true, "Eacute": true, "Ecirc": true, "Egrave": true, "Euml": true,
	"GT": true, "Iacute": true, "Icirc": true, "Igrave": true, "Iuml": true,
	"LT": true, "Ntilde": true, "Oacute": true, "Ocirc": true, "Ograve": true,
	"Oslash": true, "Otilde": true, "Ouml": true, "QUOT": true, "REG": true,
	"THORN": true, "Uacute": true, "Ucirc": true, "Ugrave": true, "Uuml": true,
	"Yacute": true, "aacute": true, "acirc": true, "acute": true, "aelig": true,
	"agrave": true, "amp": true, "aring": true, "atilde": true, "auml": true,
	"brvbar": true, "ccedil": true, "cedil": true, "cent": true, "copy": true,
	"curren": true, "deg": true, "divide": true, "eacute": true, "ecirc": true,
	"egrave": true, "eth": true, "euml": true, "frac12": true, "frac14": true,
	"frac34": true, "gt": true, "iacute": true, "icirc": true, "iexcl": true,
	"igrave": true, "iquest": true, "iuml": true, "laquo": true, "lt": true,
	"macr": true, "micro": true, "middot": true, "nbsp": true, "not": true,
	"ntilde": true, "oacute": true, "ocirc": true, "ograve": true, "ordf": true,
	"ordm": true, "oslash": true, "otilde": true, "ouml": true, "para": true,
	"plusmn": true, "pound": true, "quot": true, "raquo": true, "reg": true,
	"sect": true, "shy": true, "sup1": true, "sup2": true, "sup3": true,
	"szlig": true, "thorn": true, "times": true, "uacute": true, "ucirc": true,
	"ugrave": true, "uml": true, "uuml": true, "yacute": true, "yen": true,
	"yuml": true,
}

// NamedEntities maps HTML5 named character reference names to the string
// they decode to. It includes every legacy entity in LegacyEntities plus the
// commonly used entities that require a trailing semicolon. It is not the
// full WHATWG table of 2,231 named character references; see DESIGN.md for
// the rationale behind this reduced set.
var NamedEntities = buildNamedEntities()

func buildNamedEntities() map[string]string {
	m := map[string]string{
		"AElig": "Æ", "AMP": "&", "Aacute": "Á", "Acirc": "Â",
		"Agrave": "À", "Aring": "Å", "Atilde": "Ã", "Auml": "Ä",
		"COPY": "©", "Ccedil": "Ç", "ETH": "Ð", "Eacute": "É",
		"Ecirc": "Ê", "Egrave": "È", "Euml": "Ë", "GT": ">",
		"Iacute": "Í", "Icirc": "Î", "Igrave": "Ì", "Iuml": "Ï",
		"LT": "<", "Ntilde": "Ñ", "Oacute": "Ó", "Ocirc": "Ô",
		"Ograve": "Ò", "Oslash": "Ø", "Otilde": "Õ", "Ouml": "Ö",
		"QUOT": "\"", "REG": "®", "THORN": "Þ", "Uacute": "Ú",
		"Ucirc": "Û", "Ugrave": "Ù", "Uuml": "Ü", "Yacute": "Ý",
		"aacute": "á", "acirc": "â", "acute": "´", "aelig": "æ",
		"agrave": "à", "amp": "&", "aring": "å", "atilde": "ã",
		"auml": "ä", "brvbar": "¦", "ccedil": "ç", "cedil": "¸",
		"cent": "¢", "copy": "©", "curren": "¤", "deg": "°",
		"divide": "÷", "eacute": "é", "ecirc": "ê", "egrave": "è",
		"eth": "ð", "euml": "ë", "frac12": "½", "frac14": "¼",
		"frac34": "¾", "gt": ">", "iacute": "í", "icirc": "î",
		"iexcl": "¡", "igrave": "ì", "iquest": "¿", "iuml": "ï",
		"laquo": "«", "lt": "<", "macr": "¯", "micro": "µ",
		"middot": "·", "nbsp": " ", "not": "¬", "ntilde": "ñ",
		"oacute": "ó", "ocirc": "ô", "ograve": "ò", "ordf": "ª",
		"ordm": "º", "oslash": "ø", "otilde": "õ", "ouml": "ö",
		"para": "¶", "plusmn": "±", "pound": "£", "quot": "\"",
		"raquo": "»", "reg": "®", "sect": "§", "shy": "­",
		"sup1": "¹", "sup2": "²", "sup3": "³", "szlig": "ß",
		"thorn": "þ", "times": "×", "uacute": "ú", "ucirc": "û",
		"ugrave": "ù", "uml": "¨", "uuml": "ü", "yacute": "ý",
		"yen": "¥", "yuml": "ÿ",
	}

	// Modern entities: require a trailing semicolon and are not part of the
	// legacy HTML4 set.
	modern := map[string]string{
		"apos": "'", "OElig": "Œ", "oelig": "œ", "Scaron": "Š",
		"scaron": "š", "Yuml": "Ÿ", "fnof": "ƒ", "circ": "ˆ",
		"tilde": "˜",
		"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
		"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
		"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
		"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
		"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
		"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
		"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
		"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
		"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
		"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
		"rho": "ρ", "sigmaf": "ς", "sigma": "σ", "tau": "τ",
		"upsilon": "υ", "phi": "φ", "chi": "χ", "psi": "ψ",
		"omega": "ω", "thetasym": "ϑ", "upsih": "ϒ", "piv": "ϖ",
		"ensp": " ", "emsp": " ", "thinsp": " ",
		"zwnj": "‌", "zwj": "‍", "lrm": "‎", "rlm": "‏",
		"ndash": "–", "mdash": "—", "lsquo": "‘", "rsquo": "’",
		"sbquo": "‚", "ldquo": "“", "rdquo": "”", "bdquo": "„",
		"dagger": "†", "Dagger": "‡", "bull": "•", "hellip": "…",
		"permil": "‰", "prime": "′", "Prime": "″", "lsaquo": "‹",
		"rsaquo": "›", "oline": "‾", "frasl": "⁄", "euro": "€",
		"image": "ℑ", "weierp": "℘", "real": "ℜ", "trade": "™",
		"alefsym": "ℵ", "larr": "←", "uarr": "↑", "rarr": "→",
		"darr": "↓", "harr": "↔", "crarr": "↵", "lArr": "⇐",
		"uArr": "⇑", "rArr": "⇒", "dArr": "⇓", "hArr": "⇔",
		"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
		"nabla": "∇", "isin": "∈", "notin": "∉", "ni": "∋",
		"prod": "∏", "sum": "∑", "minus": "−", "lowast": "∗",
		"radic": "√", "prop": "∝", "infin": "∞", "ang": "∠",
		"and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
		"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅",
		"asymp": "≈", "ne": "≠", "equiv": "≡", "le": "≤",
		"ge": "≥", "sub": "⊂", "sup": "⊃", "nsub": "⊄",
		"sube": "⊆", "supe": "⊇", "oplus": "⊕", "otimes": "⊗",
		"perp": "⊥", "sdot": "⋅", "lceil": "⌈", "rceil": "⌉",
		"lfloor": "⌊", "rfloor": "⌋", "lang": "⟨", "rang": "⟩",
		"loz": "◊", "spades": "♠", "clubs": "♣", "hearts": "♥",
		"diams": "♦",
		"NewLine": "\n", "Tab": "\t", "ZeroWidthSpace": "​",
		"NotEqualTilde": "≂̸", "acE": "∾̳",
	}
	for k, v := range modern {
		m[k] = v
	}
	return m
}
