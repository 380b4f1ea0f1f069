package store

const (
	createUser = `INSERT INTO users (username, email, password, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password, role, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password, role, created_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT user_id, username, email, password, role, created_at
    FROM users
    WHERE user_id = $1;`

	findFirstAdmin = `SELECT user_id, username, email, password, role, created_at
    FROM users
    WHERE role = 'Y'
    ORDER BY user_id
    LIMIT 1;`

	listUsers = `SELECT user_id, username, email, password, role, created_at
    FROM users
    ORDER BY user_id;`

	updateUsername = `UPDATE users
    SET username = $2
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createMoveIn = `INSERT INTO movein_info (name, rrn, email, before_addr, after_addr, reg_dt, move_in_dt, is_approval, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
    RETURNING id, name, rrn, email, before_addr, after_addr, reg_dt, approval_dt, move_in_dt, is_approval, user_id;`

	getMoveIn = `SELECT id, name, rrn, email, before_addr, after_addr, reg_dt, approval_dt, move_in_dt, is_approval, user_id
    FROM movein_info
    WHERE id = $1;`

	approveMoveIn = `UPDATE movein_info
    SET is_approval = TRUE, approval_dt = $2
    WHERE id = $1
    RETURNING id, name, rrn, email, before_addr, after_addr, reg_dt, approval_dt, move_in_dt, is_approval, user_id;`

	deleteMoveIn = `DELETE FROM movein_info
    WHERE id = $1;`

	createFile = `INSERT INTO files (user_id, file_name, file_path, org_file_name, file_size, file_url)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING file_seq, user_id, file_name, file_path, org_file_name, file_size, file_url;`

	findFileByUserID = `SELECT file_seq, user_id, file_name, file_path, org_file_name, file_size, file_url
    FROM files
    WHERE user_id = $1
    ORDER BY file_seq
    LIMIT 1;`

	deleteFilesByUserID = `DELETE FROM files
    WHERE user_id = $1;`
)
