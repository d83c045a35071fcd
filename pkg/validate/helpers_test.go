package validate

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ---- функции для тестирования ----

func lineJSON(id int64, packageType, quantity int, desc string) string {
	return `{
  "OrderLineID": ` + strconv.FormatInt(id, 10) + `,
  "OrderID": 45,
  "StockItemID": 164,
  "Description": "` + desc + `",
  "PackageTypeID": ` + strconv.Itoa(packageType) + `,
  "Quantity": ` + strconv.Itoa(quantity) + `,
  "UnitPrice": 32.00
}`
}

func oneLineJSON(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
