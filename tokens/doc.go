// Package tokens keeps normalized delimiter-separated value tokens.
//
// Every token is trimmed of whitespace and control bytes on the way in and
// rejected when nothing remains. The Config decides whether tokens are
// lowercased (ASCII letters only) and whether duplicates are dropped:
//
//	tk := tokens.NewDefault().Add(" A ", "a", "B")  // ["a" "b"]
//	tk.Has("b")                                      // true
//	tk.Delete("A")                                   // true, ["b"]
//	s, _ := tk.Join(",")                             // "b"
package tokens
