package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		role Role
	}{
		{`#include <string>`, Directive},
		{`  #include "local.h"`, Directive},
		{`# include <vector>`, Directive},
		{`using namespace std;`, Directive},
		{`using std::cout;`, Directive},

		{`int square(int x) { return x * x; }`, Function},
		{`static inline int id(int x) { return x; }`, Function},
		{`template <typename T> T twice(T x) { return x + x; }`, Function},
		{`std::string greet(const std::string& name) { return "hi " + name; }`, Function},
		{`constexpr int zero() noexcept { return 0; }`, Function},
		{`virtual int area() const override { return 0; }`, Function},

		{`int x = 5;`, Statement},
		{`cout << "hello\n";`, Statement},
		{`x += square(2);`, Statement},
		{`for (int i = 0; i < 3; i++) cout << i;`, Statement},
		{`// just a comment`, Statement},
		{``, Statement},
		{`usingx = 1;`, Statement},
	}

	for _, test := range tests {
		assert.Equal(t, test.role, Classify(test.line), "line: %v", test.line)
	}
}

func TestClassifyFunctionNeedsBodyBrace(t *testing.T) {
	t.Parallel()

	// A declaration without the opening brace is just a statement.
	assert.Equal(t, Statement, Classify(`int square(int x);`))
}
