package constants

const (
	InsertOrder = `
	INSERT INTO orders (id, user_id)
	VALUES ($1, $2)
	RETURNING id, user_id, created_at
	`

	InsertTicket = `
	INSERT INTO tickets (id, seat_row, seat_num, flight_id, order_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, seat_row, seat_num, flight_id, order_id, created_at
	`

	DeleteTicketsByOrder = `
	DELETE FROM tickets WHERE order_id = $1
	`

	DeleteOrderByID = `
	DELETE FROM orders WHERE id = $1
	`

	GetOrderForUser = `
	SELECT id, user_id, created_at FROM orders
	WHERE id = $1 AND user_id = $2
	`

	GetOrdersByUser = `
	SELECT id, user_id, created_at FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	GetFlightSeating = `
	SELECT f.id AS flight_id, a.rows, a.seats_in_row
	FROM flights f
	JOIN airplanes a ON a.id = f.airplane_id
	WHERE f.id = $1
	`

	GetTicketsByOrders = `
	SELECT t.id, t.seat_row, t.seat_num, t.flight_id, t.order_id, t.created_at,
	       f.departure_time, f.arrival_time,
	       src.closest_big_city AS city_from,
	       dst.closest_big_city AS city_to
	FROM tickets t
	JOIN flights f ON f.id = t.flight_id
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	WHERE t.order_id = ANY($1)
	ORDER BY t.created_at ASC
	`

	GetTicketForUser = `
	SELECT t.id, t.seat_row, t.seat_num, t.flight_id, t.order_id, t.created_at,
	       f.departure_time, f.arrival_time,
	       src.closest_big_city AS city_from,
	       dst.closest_big_city AS city_to
	FROM tickets t
	JOIN orders o ON o.id = t.order_id
	JOIN flights f ON f.id = t.flight_id
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	WHERE t.id = $1 AND o.user_id = $2
	`

	GetTicketsByUser = `
	SELECT t.id, t.seat_row, t.seat_num, t.flight_id, t.order_id, t.created_at,
	       f.departure_time, f.arrival_time,
	       src.closest_big_city AS city_from,
	       dst.closest_big_city AS city_to
	FROM tickets t
	JOIN orders o ON o.id = t.order_id
	JOIN flights f ON f.id = t.flight_id
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	WHERE o.user_id = $1
	ORDER BY t.created_at DESC
	`
)
