package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caixa/internal/importer"
	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

func TestParser_Parse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int
		wantErr bool
	}

	tests := []testCase{
		{
			name: "Success",
			input: "date,type,amount,description,category,mode\n" +
				"2024-05-01,CASH_IN,100.00,salary,Salary,Bank Transfer\n" +
				"2024-05-02,CASH_OUT,12.50,food,Groceries,Card\n",
			want: 2,
		},
		{
			name: "TypeAliases",
			input: "date,type,amount\n" +
				"2024-05-01,income,10\n" +
				"2024-05-02,EXPENSE,5\n" +
				"2024-05-03,in,1\n" +
				"2024-05-04,OUT,2\n",
			want: 4,
		},
		{
			name: "EuropeanDateAndAmount",
			input: "date,type,amount\n" +
				"02-05-2024,CASH_OUT,\"1.234,56\"\n",
			want: 1,
		},
		{
			name: "ExtraAndReorderedColumns",
			input: "note,AMOUNT,Type,Date\n" +
				"ignored,99,CASH_IN,2024-05-01\n",
			want: 1,
		},
		{
			name: "TrailingBlankRows",
			input: "date,type,amount\n" +
				"2024-05-01,CASH_IN,10\n" +
				",,\n" +
				"\n",
			want: 1,
		},
		{
			name:    "MissingRequiredColumn",
			input:   "date,description\n2024-05-01,x\n",
			wantErr: true,
		},
		{
			name:    "BadDate",
			input:   "date,type,amount\nyesterday,CASH_IN,10\n",
			wantErr: true,
		},
		{
			name:    "BadType",
			input:   "date,type,amount\n2024-05-01,TRANSFER,10\n",
			wantErr: true,
		},
		{
			name:    "BadAmount",
			input:   "date,type,amount\n2024-05-01,CASH_IN,ten\n",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := importer.NewParser().Parse(strings.NewReader(tt.input))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestParser_Parse_Fields(t *testing.T) {
	input := "date,type,amount,description,category,mode\n" +
		"2024-05-01,CASH_OUT,\"1.234,56\",monthly rent,Rent,Bank Transfer\n"

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)

	in := got[0]
	assert.Equal(t, ledger.TypeCashOut, in.Type)
	assert.True(t, in.Amount.Equal(decimal.RequireFromString("1234.56")),
		"got amount %s", in.Amount)
	assert.Equal(t, "monthly rent", in.Description)
	assert.Equal(t, "Rent", in.Category)
	assert.Equal(t, "Bank Transfer", in.Mode)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), in.Date)
}

func TestParser_Parse_AmountNotations(t *testing.T) {
	type testCase struct {
		name string
		cell string
		want string
	}

	tests := []testCase{
		{name: "Plain", cell: "1234.56", want: "1234.56"},
		{name: "ThousandsComma", cell: `"1,234.56"`, want: "1234.56"},
		{name: "European", cell: `"1.234,56"`, want: "1234.56"},
		{name: "CommaDecimal", cell: `"12,50"`, want: "12.50"},
		{name: "SpaceGrouped", cell: `"1 234,56"`, want: "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "date,type,amount\n2024-05-01,CASH_IN," + tt.cell + "\n"

			got, err := importer.NewParser().Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, got, 1)

			assert.True(t, got[0].Amount.Equal(decimal.RequireFromString(tt.want)),
				"got amount %s", got[0].Amount)
		})
	}
}

func TestParser_Parse_Windows1252(t *testing.T) {
	// "café" with 0xE9 for é, as exported by legacy spreadsheet tools.
	input := "date,type,amount,description\n" +
		"2024-05-01,CASH_OUT,4.20,caf\xe9\n"

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "café", got[0].Description)
}
