package test

import (
	"math/rand"
	"strings"
)

const validTokens = "fun|main|(|)|{|}|,|.|-|+|;|/|*|!|!=|=|==|>|>=|<|<=|and|or|if|else|while|for|var|print|return|nil|true|false|counter|_tmp1|\"this is a string\"|\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\"|\"\"|123|3.25|0|// comment\n|\n"

// Statements that parse and run without errors on their own
const validStatements = "var a = 1;|print 1 + 2 * 3;|{ var b = \"x\"; print b + \"y\"; }|if (true) print 1; else print 2;|for (var i = 0; i < 3; i = i + 1) print i;|fun f(x) { return x * 2; }|print !nil;|print (1 + 2) * 3 == 9 or false;"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	return pick(validTokens, size, sep)
}

// GetRandomStatements returns size well-formed statements joined by newlines.
func GetRandomStatements(size int) string {
	return pick(validStatements, size, "\n")
}

func pick(table string, size int, sep string) string {
	valid := strings.Split(table, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
