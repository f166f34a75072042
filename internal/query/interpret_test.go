package query

import (
	"strings"
	"testing"
	"time"

	"github.com/monykiss/schedkit/internal/schedule"
)

var refMonday = schedule.Date(2025, time.October, 27)

func fixtureRecords() []schedule.Record {
	return []schedule.Record{
		{
			CompanyCode: "a001", CompanyName: "한빛상사", Brand: "Acme",
			OrderNumber: "PO-1001", Item: "Hangtag", Package: "Box",
			Quantity: 50, WorkDate: schedule.Date(2025, time.October, 27),
			RequestDate: schedule.Date(2025, time.October, 25),
		},
		{
			CompanyCode: "a001", CompanyName: "한빛상사", Brand: "Acme",
			OrderNumber: "PO-1002", Item: "Label", Package: "Roll",
			Quantity: 10, WorkDate: schedule.Date(2025, time.October, 28),
			RequestDate: schedule.Date(2025, time.October, 26),
		},
	}
}

func TestAnswerWorkDoneWithDate(t *testing.T) {
	res := Answer(fixtureRecords(), "2025-10-27 작업 완료되었나요?", refMonday)
	if !strings.Contains(res.Message, "complete") || strings.Contains(res.Message, "incomplete") {
		t.Errorf("expected a completion answer, got %q", res.Message)
	}
	if !strings.Contains(res.Message, "50 units") {
		t.Errorf("expected quantity 50, got %q", res.Message)
	}
	if len(res.Rows) != 1 || res.Rows[0].OrderNumber != "PO-1001" {
		t.Errorf("expected the single supporting row, got %+v", res.Rows)
	}
}

func TestAnswerWorkDoneNoRows(t *testing.T) {
	res := Answer(fixtureRecords(), "2025-10-29 작업 됐나?", refMonday)
	if !strings.Contains(res.Message, "incomplete") {
		t.Errorf("expected incomplete, got %q", res.Message)
	}
	if len(res.Rows) != 0 {
		t.Errorf("expected no supporting rows, got %+v", res.Rows)
	}
}

func TestAnswerWorkDoneNoDate(t *testing.T) {
	// Without a date the answer reports the most recent work entry.
	res := Answer(fixtureRecords(), "작업 다 됐나요?", refMonday)
	if !strings.Contains(res.Message, "2025-10-28") || !strings.Contains(res.Message, "10 units") {
		t.Errorf("expected the latest work entry, got %q", res.Message)
	}
}

func TestAnswerTotalQuantity(t *testing.T) {
	res := Answer(fixtureRecords(), "총 수량은?", refMonday)
	if !strings.Contains(res.Message, "60 units") {
		t.Errorf("expected total 60, got %q", res.Message)
	}
}

func TestAnswerQuantityForDate(t *testing.T) {
	res := Answer(fixtureRecords(), "2025-10-27 수량 알려줘", refMonday)
	if !strings.Contains(res.Message, "2025-10-27") || !strings.Contains(res.Message, "50 units") {
		t.Errorf("expected the dated quantity, got %q", res.Message)
	}
}

func TestAnswerQuantityWithPeriod(t *testing.T) {
	res := Answer(fixtureRecords(), "이번주 수량 알려줘", refMonday)
	// Only 10-27 is inside this week anchored at Monday 10-27.
	if !strings.Contains(res.Message, "50 units") || !strings.Contains(res.Message, "this week") {
		t.Errorf("expected a period comparison answer, got %q", res.Message)
	}
	if len(res.Rows) != 1 {
		t.Errorf("expected one in-period row, got %d", len(res.Rows))
	}
}

func TestAnswerBarePeriodFallback(t *testing.T) {
	res := Answer(fixtureRecords(), "지난주?", refMonday)
	if !strings.Contains(res.Message, "last week") {
		t.Errorf("expected a period answer, got %q", res.Message)
	}
}

func TestAnswerTokenFilter(t *testing.T) {
	res := Answer(fixtureRecords(), "hangtag 수량", refMonday)
	if !strings.Contains(res.Message, "50 units") {
		t.Errorf("expected the hangtag row's quantity, got %q", res.Message)
	}
	if len(res.Rows) != 1 || res.Rows[0].Item != "Hangtag" {
		t.Errorf("expected only the Hangtag row, got %+v", res.Rows)
	}
}

func TestAnswerRequestDate(t *testing.T) {
	res := Answer(fixtureRecords(), "요청일이 언제야?", refMonday)
	if !strings.Contains(res.Message, "2025-10-26") {
		t.Errorf("expected the most recent request date, got %q", res.Message)
	}
}

func TestAnswerReceiptOnSeparateDate(t *testing.T) {
	// The queried date appears only in the receipt column; the filter must
	// land there, not demand a matching work date too.
	records := []schedule.Record{{
		CompanyCode: "a001", CompanyName: "한빛상사", OrderNumber: "PO-9001",
		Quantity:    5,
		WorkDate:    schedule.Date(2025, time.October, 28),
		ReceiptDate: schedule.Date(2025, time.October, 27),
	}}
	res := Answer(records, "2025-10-27 인수 했나요?", refMonday)
	if !strings.Contains(res.Message, "complete") || strings.Contains(res.Message, "incomplete") {
		t.Errorf("expected receipt complete, got %q", res.Message)
	}
	if !strings.Contains(res.Message, "5 units") {
		t.Errorf("expected quantity 5, got %q", res.Message)
	}
	if len(res.Rows) != 1 {
		t.Errorf("expected the receipt row, got %+v", res.Rows)
	}
}

func TestAnswerExtraStopWords(t *testing.T) {
	// Without the operator stop word the token filters everything out.
	res := Answer(fixtureRecords(), "긴급 수량 확인", refMonday)
	if !strings.Contains(res.Message, "0 units") {
		t.Errorf("expected an empty-subset total, got %q", res.Message)
	}

	res = Answer(fixtureRecords(), "긴급 수량 확인", refMonday, "긴급")
	if !strings.Contains(res.Message, "60 units") {
		t.Errorf("expected the stop word to be dropped, got %q", res.Message)
	}
}

func TestAnswerReceiptNoRecord(t *testing.T) {
	res := Answer(fixtureRecords(), "인수 했나요?", refMonday)
	if !strings.Contains(res.Message, "No receipt date") {
		t.Errorf("expected a no-receipt answer, got %q", res.Message)
	}
}

func TestAnswerOrderList(t *testing.T) {
	res := Answer(fixtureRecords(), "발주번호 내역", refMonday)
	if !strings.Contains(res.Message, "PO-1001") || !strings.Contains(res.Message, "PO-1002") {
		t.Errorf("expected both order numbers, got %q", res.Message)
	}
}

func TestAnswerListCap(t *testing.T) {
	var records []schedule.Record
	for i := 0; i < 15; i++ {
		records = append(records, schedule.Record{
			CompanyCode: "a001",
			Item:        "item-" + string(rune('a'+i)),
		})
	}
	res := Answer(records, "아이템 보여줘", refMonday)
	if got := strings.Count(res.Message, "item-"); got != 10 {
		t.Errorf("expected the listing capped at 10 values, got %d", got)
	}
}

func TestAnswerCompanyName(t *testing.T) {
	res := Answer(fixtureRecords(), "업체명 알려줘", refMonday)
	if !strings.Contains(res.Message, "한빛상사") {
		t.Errorf("expected the company name, got %q", res.Message)
	}
}

func TestAnswerShowRows(t *testing.T) {
	res := Answer(fixtureRecords(), "내역 보여줘", refMonday)
	if len(res.Rows) != 2 {
		t.Errorf("expected all rows, got %d", len(res.Rows))
	}
}

func TestAnswerHelpFallback(t *testing.T) {
	res := Answer(fixtureRecords(), "안녕하세요", refMonday)
	if res.Message != helpMessage {
		t.Errorf("expected the help message, got %q", res.Message)
	}
}
