package atom

import "strings"

// atomList is the list of known HTML, SVG, and MathML tag and attribute
// names html5kit can fold into a 32-bit code. It is deliberately not
// exhaustive: anything missing here simply gets Atom(0), the same as any
// other unrecognized name, and falls back to ordinary string comparison.
var atomList = []string{
	"a",
	"about:legacy-compat",
	"accept",
	"action",
	"actuate",
	"address",
	"alt",
	"altGlyph",
	"altGlyphDef",
	"altGlyphItem",
	"altglyph",
	"altglyphdef",
	"altglyphitem",
	"animateColor",
	"animateMotion",
	"animateTransform",
	"animatecolor",
	"animatemotion",
	"animatetransform",
	"annotation-xml",
	"applet",
	"arcrole",
	"area",
	"aria-label",
	"article",
	"aside",
	"attributeName",
	"attributeType",
	"attributename",
	"attributetype",
	"audio",
	"autocomplete",
	"autofocus",
	"b",
	"base",
	"baseFrequency",
	"baseProfile",
	"basefont",
	"basefrequency",
	"baseprofile",
	"bgsound",
	"big",
	"blockquote",
	"body",
	"br",
	"button",
	"calcMode",
	"calcmode",
	"canvas",
	"caption",
	"center",
	"charset",
	"checked",
	"class",
	"clipPath",
	"clipPathUnits",
	"clippath",
	"clippathunits",
	"code",
	"col",
	"colgroup",
	"color",
	"colspan",
	"content",
	"data",
	"data-id",
	"data-name",
	"data-value",
	"dd",
	"definitionURL",
	"definitionurl",
	"del",
	"desc",
	"details",
	"dialog",
	"diffuseConstant",
	"diffuseconstant",
	"dir",
	"disabled",
	"div",
	"dl",
	"download",
	"dt",
	"edgeMode",
	"edgemode",
	"em",
	"embed",
	"encoding",
	"enctype",
	"face",
	"feBlend",
	"feColorMatrix",
	"feComponentTransfer",
	"feComposite",
	"feConvolveMatrix",
	"feDiffuseLighting",
	"feDisplacementMap",
	"feDistantLight",
	"feFlood",
	"feFuncA",
	"feFuncB",
	"feFuncG",
	"feFuncR",
	"feGaussianBlur",
	"feImage",
	"feMerge",
	"feMergeNode",
	"feMorphology",
	"feOffset",
	"fePointLight",
	"feSpecularLighting",
	"feSpotLight",
	"feTile",
	"feTurbulence",
	"feblend",
	"fecolormatrix",
	"fecomponenttransfer",
	"fecomposite",
	"feconvolvematrix",
	"fediffuselighting",
	"fedisplacementmap",
	"fedistantlight",
	"feflood",
	"fefunca",
	"fefuncb",
	"fefuncg",
	"fefuncr",
	"fegaussianblur",
	"feimage",
	"femerge",
	"femergenode",
	"femorphology",
	"feoffset",
	"fepointlight",
	"fespecularlighting",
	"fespotlight",
	"fetile",
	"feturbulence",
	"fieldset",
	"figcaption",
	"figure",
	"filterUnits",
	"filterunits",
	"font",
	"footer",
	"for",
	"foreignObject",
	"foreignobject",
	"form",
	"frame",
	"frameset",
	"glyphRef",
	"glyphref",
	"gradientTransform",
	"gradientUnits",
	"gradienttransform",
	"gradientunits",
	"h1",
	"h2",
	"h3",
	"h4",
	"h5",
	"h6",
	"head",
	"header",
	"headers",
	"height",
	"hgroup",
	"hidden",
	"hr",
	"href",
	"html",
	"i",
	"id",
	"iframe",
	"img",
	"input",
	"ins",
	"kernelMatrix",
	"kernelUnitLength",
	"kernelmatrix",
	"kernelunitlength",
	"keyPoints",
	"keySplines",
	"keyTimes",
	"keygen",
	"keypoints",
	"keysplines",
	"keytimes",
	"label",
	"lang",
	"legend",
	"lengthAdjust",
	"lengthadjust",
	"li",
	"limitingConeAngle",
	"limitingconeangle",
	"linearGradient",
	"lineargradient",
	"link",
	"listing",
	"main",
	"malignmark",
	"mark",
	"markerHeight",
	"markerUnits",
	"markerWidth",
	"markerheight",
	"markerunits",
	"markerwidth",
	"marquee",
	"maskContentUnits",
	"maskUnits",
	"maskcontentunits",
	"maskunits",
	"math",
	"mathml",
	"max",
	"maxlength",
	"menu",
	"menuitem",
	"meta",
	"method",
	"mglyph",
	"mi",
	"min",
	"minlength",
	"mn",
	"mo",
	"ms",
	"mtext",
	"multiple",
	"name",
	"nav",
	"nobr",
	"noembed",
	"noframes",
	"noscript",
	"numOctaves",
	"numoctaves",
	"object",
	"ol",
	"onchange",
	"onclick",
	"onload",
	"onsubmit",
	"optgroup",
	"option",
	"p",
	"param",
	"pathLength",
	"pathlength",
	"pattern",
	"patternContentUnits",
	"patternTransform",
	"patternUnits",
	"patterncontentunits",
	"patterntransform",
	"patternunits",
	"placeholder",
	"plaintext",
	"pointsAtX",
	"pointsAtY",
	"pointsAtZ",
	"pointsatx",
	"pointsaty",
	"pointsatz",
	"pre",
	"preserveAlpha",
	"preserveAspectRatio",
	"preservealpha",
	"preserveaspectratio",
	"primitiveUnits",
	"primitiveunits",
	"property",
	"radialGradient",
	"radialgradient",
	"rb",
	"readonly",
	"refX",
	"refY",
	"refx",
	"refy",
	"rel",
	"repeatCount",
	"repeatDur",
	"repeatcount",
	"repeatdur",
	"required",
	"requiredExtensions",
	"requiredFeatures",
	"requiredextensions",
	"requiredfeatures",
	"role",
	"rowspan",
	"rp",
	"rt",
	"rtc",
	"ruby",
	"s",
	"scope",
	"script",
	"search",
	"section",
	"select",
	"selected",
	"show",
	"size",
	"slot",
	"small",
	"sort",
	"source",
	"space",
	"span",
	"specularConstant",
	"specularExponent",
	"specularconstant",
	"specularexponent",
	"spreadMethod",
	"spreadmethod",
	"src",
	"startOffset",
	"startoffset",
	"stdDeviation",
	"stddeviation",
	"step",
	"stitchTiles",
	"stitchtiles",
	"strike",
	"strong",
	"style",
	"sub",
	"summary",
	"sup",
	"surfaceScale",
	"surfacescale",
	"svg",
	"systemLanguage",
	"systemlanguage",
	"tabindex",
	"table",
	"tableValues",
	"tablevalues",
	"target",
	"targetX",
	"targetY",
	"targetx",
	"targety",
	"tbody",
	"td",
	"template",
	"textLength",
	"textPath",
	"textarea",
	"textlength",
	"textpath",
	"tfoot",
	"th",
	"thead",
	"title",
	"tr",
	"track",
	"tt",
	"type",
	"u",
	"ul",
	"value",
	"var",
	"video",
	"viewBox",
	"viewTarget",
	"viewbox",
	"viewtarget",
	"wbr",
	"width",
	"xChannelSelector",
	"xchannelselector",
	"xlink",
	"xlink:actuate",
	"xlink:arcrole",
	"xlink:href",
	"xlink:role",
	"xlink:show",
	"xlink:title",
	"xlink:type",
	"xml",
	"xml:lang",
	"xml:space",
	"xmlns",
	"xmlns:xlink",
	"xmp",
	"yChannelSelector",
	"ychannelselector",
	"zoomAndPan",
	"zoomandpan",
}

// atomText is every name in atomList concatenated with no separator;
// each Atom is an (offset, length) pair into it.
var atomText = func() string {
	var sb strings.Builder
	for _, s := range atomList {
		sb.WriteString(s)
	}
	return sb.String()
}()
