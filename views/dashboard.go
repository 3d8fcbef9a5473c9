// Package views renders the admin dashboard. It is pure presentation: it
// consumes a DashboardSummary and produces HTML, with no business logic.
package views

import (
	"html/template"
	"strings"

	"car-shop-service/models"
	"car-shop-service/utils"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"ksh":     utils.FormatKES,
	"fieldID": priceFieldID,
}).Parse(dashboardHTML))

// priceFieldID builds the DOM id of a car's price input the same way the
// page's updatePrice script does, so lookups match for models with spaces.
func priceFieldID(brand, model string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, model)
	return brand + "-" + sanitized
}

// RenderDashboard renders the admin dashboard page for the given summary.
func RenderDashboard(summary *models.DashboardSummary) (string, error) {
	var b strings.Builder
	if err := dashboardTmpl.Execute(&b, summary); err != nil {
		return "", err
	}
	return b.String(), nil
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Admin Dashboard - Orders &amp; Pricing</title>
    <style>
        body { font-family: sans-serif; margin: 20px; background: #f5f7fb; color: #333; }
        h1 { color: #0b6d3a; border-bottom: 2px solid #e8f7ef; padding-bottom: 10px; }
        h2 { color: #0b6d3a; margin-top: 30px; }
        .summary { background: #fff; padding: 15px; border-radius: 8px; margin-bottom: 20px; border-left: 5px solid #0b6d3a; box-shadow: 0 2px 4px rgba(0,0,0,0.05); }
        .back-link { display: inline-block; margin-bottom: 20px; color: #0b6d3a; text-decoration: none; font-weight: bold; }
        .price-management table { width: 50%; min-width: 400px; margin-top: 15px; background: white; border-collapse: collapse; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
        .price-management th, .price-management td { border: 1px solid #ddd; padding: 10px; text-align: left; }
        .price-management th { background-color: #e8f7ef; }
        .price-management input[type="number"] { padding: 5px; width: 100px; border: 1px solid #ccc; border-radius: 4px; }
        .price-management button { background-color: #0b6d3a; color: white; border: none; padding: 6px 10px; cursor: pointer; border-radius: 4px; }
        .price-management button:hover { background-color: #084c26; }
        #ordersTable { width: 100%; border-collapse: collapse; margin-top: 20px; background: white; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
        #ordersTable th, #ordersTable td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        #ordersTable th { background-color: #e8f7ef; color: #111; font-weight: bold; }
        #ordersTable tr:nth-child(even) { background-color: #f9f9f9; }
        .delete-btn { background-color: #d9534f; color: white; border: none; padding: 5px 8px; cursor: pointer; border-radius: 4px; }
        .delete-btn:hover { background-color: #c9302c; }
    </style>
    <script>
        async function apiCall(url, method = 'GET', data = null) {
            const options = { method: method, headers: { 'Content-Type': 'application/json' } };
            if (data) { options.body = JSON.stringify(data); }
            try {
                const response = await fetch(url, options);
                const result = await response.json();
                if (!response.ok) { throw new Error(result.message || 'API call failed'); }
                return result;
            } catch (error) {
                console.error('API Error:', error);
                alert('Error: ' + error.message);
                return null;
            }
        }

        window.updatePrice = async (brand, model) => {
            const inputId = 'price-' + brand + '-' + model.replace(/ /g, '_').replace(/[^a-zA-Z0-9_-]/g, '');
            const newPrice = parseInt(document.getElementById(inputId).value);
            if (isNaN(newPrice) || newPrice <= 0) {
                alert('Please enter a valid price.');
                return;
            }
            const result = await apiCall('/api/admin/set_price', 'POST', { brand, model, new_price: newPrice });
            if (result) {
                alert('Price updated successfully! Refreshing the page...');
                window.location.reload();
            }
        };

        window.deleteOrder = async (orderId) => {
            if (confirm('Are you sure you want to delete this order ID: ' + orderId + '?')) {
                const result = await apiCall('/api/admin/delete_order/' + orderId, 'POST');
                if (result) {
                    alert('Order deleted successfully!');
                    const row = document.getElementById('order-row-' + orderId);
                    if (row) row.remove();
                }
            }
        };
    </script>
</head>
<body>
    <a href="/" class="back-link">&larr; Back to Shop</a>
    <h1>Admin Dashboard</h1>

    <h2>Sales Summary</h2>
    <div class="summary">
        <h3>Total Orders Today: <span style="color:#0b6d3a;">{{.OrdersToday}}</span></h3>
        <p>Shipment Fee Applied to All Orders: KSh {{ksh .ShipmentFee}}</p>
        <p>Ordering is currently disabled on Sundays. ({{.Weekday}})</p>
    </div>

    <h2>Car Price Management</h2>
    <div class="price-management">
        <table>
            <thead>
                <tr>
                    <th>Brand</th>
                    <th>Model</th>
                    <th>Current Price (KSh)</th>
                    <th>New Price (KSh)</th>
                    <th>Action</th>
                </tr>
            </thead>
            <tbody>
            {{range .Cars}}
                <tr>
                    <td>{{.Brand}}</td>
                    <td>{{.Model}}</td>
                    <td>{{ksh .Price}}</td>
                    <td><input type="number" id="price-{{fieldID .Brand .Model}}" value="{{.Price}}" min="1000"></td>
                    <td><button onclick="updatePrice('{{.Brand}}', '{{.Model}}')">Update</button></td>
                </tr>
            {{end}}
            </tbody>
        </table>
    </div>

    <h2>Order Management (All Time)</h2>
    {{if .Orders}}
    <table id="ordersTable">
        <thead>
            <tr>
                <th>ID</th><th>NAME</th><th>PHONE</th><th>COUNTRY</th><th>COUNTY</th>
                <th>BRAND</th><th>MODEL</th><th>QTY</th><th>UNIT PRICE</th>
                <th>ITEM TOTAL</th><th>PAYMENT</th><th>TIME</th><th>ACTION</th>
            </tr>
        </thead>
        <tbody>
        {{range .Orders}}
            <tr id="order-row-{{.ID}}">
                <td>{{.ID}}</td>
                <td>{{.Name}}</td>
                <td>{{.Phone}}</td>
                <td>{{.Country}}</td>
                <td>{{.County}}</td>
                <td>{{.Brand}}</td>
                <td>{{.Model}}</td>
                <td>{{.Quantity}}</td>
                <td>KSh {{ksh .Price}}</td>
                <td>KSh {{ksh .TotalCost}}</td>
                <td>{{.PaymentMethod}}</td>
                <td>{{.OrderTime}}</td>
                <td><button class="delete-btn" onclick="deleteOrder({{.ID}})">Delete</button></td>
            </tr>
        {{end}}
        </tbody>
    </table>
    {{else}}
    <p>No orders have been placed yet.</p>
    {{end}}
</body>
</html>
`
